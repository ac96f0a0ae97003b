package models

import "time"

// BlackoutDate marks a calendar date on which no moves are scheduled.
type BlackoutDate struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// DaySlots pairs a date with the time-slot strings still bookable on it.
type DaySlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
