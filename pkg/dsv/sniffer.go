package dsv

import "strings"

// sniffCandidates are the delimiters SniffDelimiter chooses from, in
// tie-breaking order.
var sniffCandidates = []string{",", "\t", ";", "|"}

// SniffDelimiter guesses the delimiter of sample lines among comma, tab,
// semicolon and pipe. A delimiter that appears the same number of times on
// every non-blank line scores ten times its per-line count. It returns ","
// when no candidate appears.
func SniffDelimiter(lines []string) string {
	best, bestScore := ",", 0
	for _, delim := range sniffCandidates {
		if score := sniffScore(lines, delim); score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

func sniffScore(lines []string, delim string) int {
	first, consistent, seen := 0, true, false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := strings.Count(line, delim)
		if !seen {
			first, seen = n, true
			continue
		}
		if n != first {
			consistent = false
		}
	}
	if first == 0 {
		return 0
	}
	if consistent {
		return first * 10
	}
	return first
}
