package model

import "time"

// Guest is one expanded occupant slot of a report entry. Rows are written
// once when their report is ingested and never updated.
type Guest struct {
	ID             int64  `gorm:"autoIncrement;primaryKey" json:"-"`
	ReportID       string `gorm:"index;size:36;not null" json:"-"`
	Tag            string `gorm:"size:16;not null" json:"tag"` // zero-padded record id within the report
	LastName       string `gorm:"size:128;not null" json:"lastName"`
	RoomNumber     string `gorm:"size:32;not null" json:"roomNumber"`
	NumberOfGuests int    `gorm:"not null" json:"numberOfGuests"`
	ArrivalDay     string `gorm:"size:8" json:"arrivalDay"`
	DepartureDay   string `gorm:"size:8" json:"departureDay"`
	BookingCode    string `gorm:"size:64" json:"bookingCode"`
	CreatedAt      time.Time `json:"-"`

	// Associations
	Report Report `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
