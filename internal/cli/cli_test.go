package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), append([]string{programName}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_JSON(t *testing.T) {
	path := writeTemp(t, "data.csv", "name,age\n\"Ada\", 36\n\nGrace,85\nend\n")

	code, out, errOut := runCLI(t, "-d", ",", "--bookend", `"`, "--skip-header=1", "--skip-footer=1",
		"--skip-empty-lines", "-o", "json", path)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	want := `[["Ada","36"],["Grace","85"]]` + "\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRun_StreamNDJSON(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		b.WriteString("a|b\n")
	}
	path := writeTemp(t, "data.psv", b.String())

	code, out, errOut := runCLI(t, "--delimiter=|", "--stream", "--chunk-size=10", "-o", "json", path)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("stream json printed %d lines, want one per chunk (3)", len(lines))
	}
}

func TestRun_Table(t *testing.T) {
	path := writeTemp(t, "data.tsv", "k\tv\nlonger\tx\n")

	code, out, _ := runCLI(t, "-d", `\t`, path)
	if code != ExitOK {
		t.Fatalf("exit code %d", code)
	}
	want := "| k      | v |\n|--------|---|\n| longer | x |\n"
	if out != want {
		t.Errorf("stdout =\n%s\nwant\n%s", out, want)
	}
}

func TestRun_DetectColumnsCSVOutput(t *testing.T) {
	path := writeTemp(t, "data.csv", "a,b,c\nd\ne,f,g,h\n")

	code, out, errOut := runCLI(t, "-d", ",", "--detect-columns", "-o", "csv", path)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if want := "a,b,c\nd,,\ne,f,g\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	data := writeTemp(t, "data.txt", "title\nx;y\n1;2\n")
	cfg := writeTemp(t, "cfg.yaml", "delimiter: \";\"\nskip_header_rows: 2\n")

	code, out, errOut := runCLI(t, "-c", cfg, "-o", "ndjson", data)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if want := "[\"1\",\"2\"]\n"; out != want {
		t.Errorf("config only: stdout = %q, want %q", out, want)
	}

	code, out, errOut = runCLI(t, "-c", cfg, "--skip-header=1", "-o", "ndjson", data)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if want := "[\"x\",\"y\"]\n[\"1\",\"2\"]\n"; out != want {
		t.Errorf("flag override: stdout = %q, want %q", out, want)
	}
}

func TestRun_AutoDelimiter(t *testing.T) {
	path := writeTemp(t, "data.txt", "a;b;c\n1;2;3\n")

	code, out, errOut := runCLI(t, "-d", "auto", "-v", "-o", "ndjson", path)
	if code != ExitOK {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	if want := "[\"a\",\"b\",\"c\"]\n[\"1\",\"2\",\"3\"]\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if !strings.Contains(errOut, `detected delimiter ";"`) || !strings.Contains(errOut, "chunk 0") {
		t.Errorf("verbose log missing, stderr: %s", errOut)
	}
}

func TestRun_Errors(t *testing.T) {
	data := writeTemp(t, "data.csv", "a,b,c\nd,e\n")

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no file", []string{"-d", ","}, ExitUsage, "missing input file"},
		{"two files", []string{"-d", ",", data, data}, ExitUsage, "unexpected"},
		{"unknown flag", []string{"--bogus", data}, ExitUsage, ""},
		{"missing delimiter", []string{data}, ExitUsage, "Delimiter"},
		{"bad chunk size", []string{"-d", ",", "--chunk-size=3", data}, ExitUsage, "ChunkSize"},
		{"bad format", []string{"-d", ",", "-o", "xml", data}, ExitUsage, "xml"},
		{"bad config", []string{"-c", filepath.Join(t.TempDir(), "no.yaml"), data}, ExitUsage, ""},
		{"missing file", []string{"-d", ",", filepath.Join(t.TempDir(), "none.csv")}, ExitError, "none.csv"},
		{"strict width", []string{"-d", ",", "--detect-columns", "--raise-on-missing-columns", data}, ExitError, "row 2"},
		{"bad encoding", []string{"-d", ",", "--encoding", "nope", data}, ExitError, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.code, errOut)
			}
			if !strings.HasPrefix(errOut, programName+": ") {
				t.Errorf("stderr = %q, want log prefix", errOut)
			}
			if tt.msg != "" && !strings.Contains(errOut, tt.msg) {
				t.Errorf("stderr = %q, want it to mention %q", errOut, tt.msg)
			}
		})
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	if code != ExitOK || !strings.Contains(out, "--skip-footer") {
		t.Errorf("--help: code %d, stdout %q", code, out)
	}
	if !strings.Contains(out, "Rows per chunk; also the unit of --max-detect-chunks") {
		t.Errorf("--help does not describe --chunk-size as the detection unit: %q", out)
	}
	code, out, _ = runCLI(t, "--version")
	if code != ExitOK || out != programName+" "+Version+"\n" {
		t.Errorf("--version: code %d, stdout %q", code, out)
	}
}

func TestRun_Cancelled(t *testing.T) {
	path := writeTemp(t, "data.csv", "a,b\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	code := Run(ctx, []string{programName, "-d", ",", path}, &out, &errOut)
	if code != ExitInterrupted {
		t.Errorf("exit code = %d, want %d", code, ExitInterrupted)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", out.String())
	}
}
