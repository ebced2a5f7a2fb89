package model

import "time"

// Report represents one ingested arrivals report.
type Report struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FileName   string    `gorm:"size:256;not null" json:"fileName"`
	LineCount  int       `gorm:"not null" json:"lineCount"`
	GuestCount int       `gorm:"not null" json:"guestCount"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`

	// Associations
	Guests []Guest `gorm:"foreignKey:ReportID" json:"-"`
}
