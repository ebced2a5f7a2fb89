package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Every subscription is notified whenever a new arrivals report has been
// processed.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
