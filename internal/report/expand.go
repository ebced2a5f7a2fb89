package report

import "fmt"

// appendExpanded converts a completed entry into guest records, one per
// occupant slot of each room allocation, in room order then occupant order.
// Every record of an allocation carries that allocation's occupant count,
// not the entry total. nextID is the pass-scoped counter; it is formatted
// zero-padded to three digits and simply grows wider from 1000 on.
func appendExpanded(records []GuestRecord, entry *pendingEntry, nextID *int) []GuestRecord {
	lastName, bookingCode := SplitIdentity(entry.identity)

	for _, room := range entry.rooms {
		for i := 0; i < room.Occupants; i++ {
			records = append(records, GuestRecord{
				ID:             fmt.Sprintf("%03d", *nextID),
				LastName:       lastName,
				RoomNumber:     room.RoomID,
				NumberOfGuests: room.Occupants,
				ArrivalDay:     entry.arrivalDay,
				DepartureDay:   entry.departureDay,
				BookingCode:    bookingCode,
			})
			*nextID++
		}
	}
	return records
}
