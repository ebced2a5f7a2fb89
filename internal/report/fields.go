package report

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// roomRe matches room allocations like "001(1)", "-1(2)", "502-C(1)" or
	// "210 T(2)". The leading (?:^|\s) keeps it from matching the tail of a
	// matchcode such as "/1(2)".
	roomRe = regexp.MustCompile(`(?:^|\s)(-?\d+(?:-[A-Z])?|\d+\s[A-Z])\((\d+)\)`)

	// dayRe matches a DD.MM.YY token and captures the day component.
	dayRe = regexp.MustCompile(`^(\d{2})\.\d{2}\.\d{2}`)
)

// RoomAllocation is one (room, occupant count) pair found in a report line.
type RoomAllocation struct {
	RoomID    string
	Occupants int
}

// ExtractRooms returns all room allocations in a line, in order of appearance.
// A line may yield none.
func ExtractRooms(line string) []RoomAllocation {
	var rooms []RoomAllocation
	for _, m := range roomRe.FindAllStringSubmatch(line, -1) {
		count, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		rooms = append(rooms, RoomAllocation{
			RoomID:    strings.TrimSpace(m[1]),
			Occupants: count,
		})
	}
	return rooms
}

// ExtractDays scans the whitespace-delimited tokens of a line for DD.MM.YY
// dates and returns the day components of the first two as (arrival,
// departure). Fewer than two date tokens yield two empty strings; the report
// occasionally omits dates and downstream consumers tolerate empty days.
func ExtractDays(line string) (arrival, departure string) {
	var days []string
	for _, token := range strings.Fields(line) {
		if m := dayRe.FindStringSubmatch(token); m != nil {
			days = append(days, m[1])
		}
	}
	if len(days) < 2 {
		return "", ""
	}
	return days[0], days[1]
}

// SplitIdentity decomposes a compound matchcode token into the displayable
// surname and the booking code. The two derivations are independent and both
// operate on the original token.
//
// The surname is the part before the first underscore (or, failing that, the
// first slash), uppercased. The booking code is the trailing reference
// portion: matchcodes read SURNAME_FIRSTNAME/CODE or
// SURNAME_FIRSTNAME_CODE, where CODE may itself contain slashes
// (e.g. "AHMAD_WASEEM_XXD/2521/1" carries the code "XXD/2521/1").
func SplitIdentity(token string) (lastName, bookingCode string) {
	switch {
	case strings.Contains(token, "_"):
		lastName = strings.ToUpper(token[:strings.Index(token, "_")])
	case strings.Contains(token, "/"):
		lastName = strings.ToUpper(token[:strings.Index(token, "/")])
	default:
		lastName = strings.ToUpper(token)
	}

	slash := strings.Index(token, "/")
	if slash < 0 {
		return lastName, ""
	}
	head := token[:slash]
	switch strings.Count(head, "_") {
	case 0:
		// No underscore before the slash: the whole token is the reference.
		bookingCode = strings.TrimSpace(token)
	case 1:
		// SURNAME_FIRSTNAME/CODE: the code starts after the slash.
		bookingCode = strings.TrimSpace(token[slash+1:])
	default:
		// SURNAME_FIRSTNAME_CODE where CODE contains slashes: the code starts
		// after the underscore nearest the slash.
		bookingCode = strings.TrimSpace(token[strings.LastIndex(head, "_")+1:])
	}
	return lastName, bookingCode
}
