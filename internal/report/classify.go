package report

import "strings"

// LineKind is the category the classifier assigns to one report line.
type LineKind int

const (
	// LineNoise is boilerplate: headers, footers, page markers, subtotals.
	LineNoise LineKind = iota
	// LineContinuation extends the open entry's room list only.
	LineContinuation
	// LinePrimary is a candidate for opening a new entry. The parser still
	// validates it; a candidate that fails validation is dropped like noise.
	LinePrimary
)

// Rules holds the classification vocabulary of a report layout. The zero
// value is not usable directly; NewParser fills empty fields from
// DefaultRules.
type Rules struct {
	// NoiseMarkers are substrings that mark a line as report boilerplate.
	NoiseMarkers []string
	// NoisePrefixes are line prefixes of non-guest rows (internal transfers,
	// repeated column headers).
	NoisePrefixes []string
	// StatusMarkers are single-character flag lines that belong to the
	// preceding entry but carry no room data.
	StatusMarkers []string
	// MinPrimaryTokens is the minimum whitespace-separated token count for a
	// line to qualify as primary.
	MinPrimaryTokens int
}

// DefaultRules returns the vocabulary of the standard arrivals report layout.
func DefaultRules() Rules {
	return Rules{
		NoiseMarkers:     []string{"Matchcode", "Arrivals", "Seite"},
		NoisePrefixes:    []string{"EHC/", "Room Arrival"},
		StatusMarkers:    []string{"O", "X"},
		MinPrimaryTokens: 5,
	}
}

// Classify decides the category of a single, already-trimmed report line.
func (r Rules) Classify(line string) LineKind {
	if r.isNoise(line) {
		return LineNoise
	}
	if r.isContinuation(line) {
		return LineContinuation
	}
	return LinePrimary
}

func (r Rules) isNoise(line string) bool {
	if line == "" {
		return true
	}
	for _, marker := range r.NoiseMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	for _, prefix := range r.NoisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	// Page subtotals are bare numbers.
	return isAllDigits(line)
}

func (r Rules) isContinuation(line string) bool {
	for _, marker := range r.StatusMarkers {
		if line == marker {
			return true
		}
	}
	if !roomRe.MatchString(line) {
		return false
	}
	// A room list with no dates is a wrapped room column; primary lines
	// carry dates.
	for _, token := range strings.Fields(line) {
		if dayRe.MatchString(token) {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return s != ""
}
