package columns

import (
	"errors"
	"reflect"
	"testing"
)

func TestInitial(t *testing.T) {
	tests := []struct {
		name   string
		detect bool
		width  int
		max    int
		want   State
	}{
		{"nothing requested", false, 0, 0, Inactive{}},
		{"detection unbounded", true, 0, 0, Scanning{}},
		{"detection bounded", true, 0, 3, Scanning{Limit: 3}},
		{"explicit width", false, 4, 0, Established{Width: 4}},
		{"explicit width wins over detection", true, 4, 2, Established{Width: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initial(tt.detect, tt.width, tt.max); got != tt.want {
				t.Errorf("Initial() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// run feeds chunks through Step and returns the flattened rows and final state.
func run(t *testing.T, s State, chunks [][][]string, p Policy) ([][]string, State) {
	t.Helper()
	var out [][]string
	for _, chunk := range chunks {
		var err error
		s, err = Step(s, chunk, nil, p)
		if err != nil {
			t.Fatalf("Step() unexpected error: %v", err)
		}
		out = append(out, chunk...)
	}
	return out, s
}

func TestStep_DetectionBoundary(t *testing.T) {
	chunks := [][][]string{{
		{},
		{"", ""},
		{"a", "b", "c"},
		{"d", "e"},
	}}

	got, state := run(t, Scanning{}, chunks, Policy{})
	want := [][]string{{}, {"", ""}, {"a", "b", "c"}, {"d", "e", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if state != (Established{Width: 3, ChunksScanned: 1}) {
		t.Errorf("state = %#v, want Established{3, 1}", state)
	}
}

func TestStep_DetectionAcrossChunks(t *testing.T) {
	chunks := [][][]string{
		{{}, {}},
		{{}, {}},
		{{}, {"a", "b", "c"}},
		{{"d", "e"}, {}},
	}

	got, state := run(t, Scanning{Limit: 3}, chunks, Policy{})
	want := [][]string{{}, {}, {}, {}, {}, {"a", "b", "c"}, {"d", "e", ""}, {"", "", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if state != (Established{Width: 3, ChunksScanned: 3}) {
		t.Errorf("state = %#v, want Established{3, 3}", state)
	}
}

func TestStep_Abandoned(t *testing.T) {
	chunks := [][][]string{
		{{}, {}},
		{{}, {}},
		{{"a", "b", "c"}, {"d", "e"}},
		{{"f"}},
	}

	got, state := run(t, Scanning{Limit: 2}, chunks, Policy{RaiseOnMissing: true})
	want := [][]string{{}, {}, {}, {}, {"a", "b", "c"}, {"d", "e"}, {"f"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if state != (Abandoned{ChunksScanned: 2}) {
		t.Errorf("state = %#v, want Abandoned{2}", state)
	}
}

func TestStep_ExplicitWidth(t *testing.T) {
	chunks := [][][]string{{{}, {}, {"a", "b", "c"}, {"d", "e"}}}

	got, _ := run(t, Initial(true, 3, 0), chunks, Policy{})
	want := [][]string{{"", "", ""}, {"", "", ""}, {"a", "b", "c"}, {"d", "e", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestStep_Inactive(t *testing.T) {
	chunks := [][][]string{{{"a"}, {"b", "c"}, {}}}

	got, state := run(t, Inactive{}, chunks, Policy{true, true})
	want := [][]string{{"a"}, {"b", "c"}, {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if state != (Inactive{}) {
		t.Errorf("state = %#v, want Inactive", state)
	}
}

func TestStep_StrictErrorCarriesRow(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"x", "y"}}
	_, err := Step(Scanning{}, rows, []int{4, 5}, Policy{RaiseOnMissing: true})

	var we *WidthError
	if !errors.As(err, &we) {
		t.Fatalf("Step() error = %v, want *WidthError", err)
	}
	if we.Row != 5 || we.Expected != 3 || we.Actual != 2 {
		t.Errorf("WidthError = %+v, want row 5 expected 3 actual 2", we)
	}
	if !errors.Is(err, ErrMissingColumns) {
		t.Errorf("error %v is not ErrMissingColumns", err)
	}
}

func TestStep_ExtraColumnsRaise(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"x", "y", "z"}}
	_, err := Step(Scanning{}, rows, nil, Policy{RaiseOnExtra: true})
	if !errors.Is(err, ErrExtraColumns) {
		t.Fatalf("Step() error = %v, want ErrExtraColumns", err)
	}
}
