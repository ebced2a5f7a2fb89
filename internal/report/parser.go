// Package report turns the text lines of an extracted arrivals report into
// normalized guest stay records, one record per physical occupant of a room.
// The source report has no stable schema: entries span multiple lines, room
// lists wrap onto continuation lines, and guest counts are expanded into
// individual records. Malformed rows are skipped, never fatal, because the
// source text is uncontrolled.
package report

import (
	"log"
	"strings"
)

// GuestRecord is one expanded occupant slot. Records are immutable once
// created.
type GuestRecord struct {
	ID             string
	LastName       string
	RoomNumber     string
	NumberOfGuests int
	ArrivalDay     string
	DepartureDay   string
	BookingCode    string
}

// pendingEntry is the accumulated state for one booking between the primary
// line that opens it and the primary line (or end of input) that closes it.
// It never escapes a parse pass.
type pendingEntry struct {
	identity     string
	rooms        []RoomAllocation
	arrivalDay   string
	departureDay string
}

// hasOccupants reports whether the entry would expand into at least one
// record. Entries with an identity but no occupied rooms are dropped.
func (e *pendingEntry) hasOccupants() bool {
	for _, room := range e.rooms {
		if room.Occupants >= 1 {
			return true
		}
	}
	return false
}

// Parser parses arrivals reports using a fixed set of classification rules.
// It is stateless between calls; all per-pass state lives in Parse.
type Parser struct {
	rules Rules
}

// NewParser returns a parser for the given rules. Empty rule fields fall back
// to DefaultRules, so callers only override what their report layout changes.
func NewParser(rules Rules) *Parser {
	defaults := DefaultRules()
	if len(rules.NoiseMarkers) == 0 {
		rules.NoiseMarkers = defaults.NoiseMarkers
	}
	if len(rules.NoisePrefixes) == 0 {
		rules.NoisePrefixes = defaults.NoisePrefixes
	}
	if len(rules.StatusMarkers) == 0 {
		rules.StatusMarkers = defaults.StatusMarkers
	}
	if rules.MinPrimaryTokens <= 0 {
		rules.MinPrimaryTokens = defaults.MinPrimaryTokens
	}
	return &Parser{rules: rules}
}

// Parse walks the report lines in order and returns the expanded guest
// records. The pass is a two-state fold: a primary line opens an entry
// (flushing the previous one), continuation lines append rooms to it, and
// the end of input flushes the last entry. Record IDs are contiguous and
// increasing across the whole pass.
func (p *Parser) Parse(lines []string) []GuestRecord {
	var records []GuestRecord
	var open *pendingEntry
	nextID := 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch p.rules.Classify(line) {
		case LineNoise:
			continue

		case LineContinuation:
			if open == nil {
				// Room data with no entry to attach it to; the report is
				// partially malformed, keep going.
				log.Printf("report: dropping orphan continuation line %q", line)
				continue
			}
			open.rooms = append(open.rooms, ExtractRooms(line)...)

		case LinePrimary:
			entry := p.primaryEntry(line)
			if entry == nil {
				continue
			}
			if open != nil && open.hasOccupants() {
				records = appendExpanded(records, open, &nextID)
			}
			open = entry
		}
	}

	if open != nil && open.hasOccupants() {
		records = appendExpanded(records, open, &nextID)
	}
	return records
}

// primaryEntry validates a candidate primary line and builds the entry it
// opens. It returns nil for malformed rows: too few tokens or no recognized
// room allocation.
func (p *Parser) primaryEntry(line string) *pendingEntry {
	tokens := strings.Fields(line)
	if len(tokens) < p.rules.MinPrimaryTokens {
		return nil
	}

	rooms := ExtractRooms(line)
	if len(rooms) == 0 {
		return nil
	}

	arrival, departure := ExtractDays(line)
	return &pendingEntry{
		identity:     tokens[0],
		rooms:        rooms,
		arrivalDay:   arrival,
		departureDay: departure,
	}
}
