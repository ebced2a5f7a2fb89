package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRooms(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []RoomAllocation
	}{
		{
			name:     "Plain room",
			line:     "102(4)",
			expected: []RoomAllocation{{RoomID: "102", Occupants: 4}},
		},
		{
			name:     "Zero padded room",
			line:     "001(1)",
			expected: []RoomAllocation{{RoomID: "001", Occupants: 1}},
		},
		{
			name:     "Basement room",
			line:     "-1(2)",
			expected: []RoomAllocation{{RoomID: "-1", Occupants: 2}},
		},
		{
			name:     "Hyphenated letter suffix",
			line:     "502-C(1)",
			expected: []RoomAllocation{{RoomID: "502-C", Occupants: 1}},
		},
		{
			name:     "Space separated letter suffix",
			line:     "210 T(2)",
			expected: []RoomAllocation{{RoomID: "210 T", Occupants: 2}},
		},
		{
			name: "Multiple rooms keep line order",
			line: "SMITH_JOHN/1234 101(2) 102(1) 15.03.24 18.03.24",
			expected: []RoomAllocation{
				{RoomID: "101", Occupants: 2},
				{RoomID: "102", Occupants: 1},
			},
		},
		{
			name:     "Matchcode fragment is not a room",
			line:     "MEYER_ANNA/1(2)",
			expected: nil,
		},
		{
			name:     "No rooms at all",
			line:     "Garni Hotel Overview",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractRooms(tc.line))
		})
	}
}

func TestExtractDays(t *testing.T) {
	testCases := []struct {
		name              string
		line              string
		arrival, departure string
	}{
		{
			name:      "Two dates",
			line:      "SMITH_JOHN/1234 101(2) 102(1) 15.03.24 18.03.24",
			arrival:   "15",
			departure: "18",
		},
		{
			name:      "Extra dates beyond the second are ignored",
			line:      "X 15.03.24 18.03.24 20.03.24",
			arrival:   "15",
			departure: "18",
		},
		{
			name: "Single date yields empty pair",
			line: "SMITH_JOHN/1234 101(2) 15.03.24",
		},
		{
			name: "No dates",
			line: "SMITH_JOHN/1234 101(2)",
		},
		{
			name:      "Trailing punctuation on the token",
			line:      "A 15.03.24, 18.03.24",
			arrival:   "15",
			departure: "18",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arrival, departure := ExtractDays(tc.line)
			assert.Equal(t, tc.arrival, arrival)
			assert.Equal(t, tc.departure, departure)
		})
	}
}

func TestSplitIdentity(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		lastName    string
		bookingCode string
	}{
		{
			name:        "Underscore then slash",
			token:       "SMITH_JOHN/1234",
			lastName:    "SMITH",
			bookingCode: "1234",
		},
		{
			name:        "Code segment containing slashes",
			token:       "AHMAD_WASEEM_XXD/2521/1",
			lastName:    "AHMAD",
			bookingCode: "XXD/2521/1",
		},
		{
			name:        "Slash without underscore keeps the whole token",
			token:       "WALKIN/555",
			lastName:    "WALKIN",
			bookingCode: "WALKIN/555",
		},
		{
			name:     "Underscore without slash has no code",
			token:    "MEYER_ANNA",
			lastName: "MEYER",
		},
		{
			name:     "Bare surname",
			token:    "MILLER",
			lastName: "MILLER",
		},
		{
			name:        "Lowercase input is uppercased",
			token:       "smith_john/88",
			lastName:    "SMITH",
			bookingCode: "88",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lastName, bookingCode := SplitIdentity(tc.token)
			assert.Equal(t, tc.lastName, lastName)
			assert.Equal(t, tc.bookingCode, bookingCode)
		})
	}
}
