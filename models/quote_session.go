package models

import "time"

// QuoteStage enumerates the steps of the quote wizard. Transitions are
// forward-only; editing an earlier step rewinds the stage and clears the
// fields it owns.
type QuoteStage string

const (
	StageLocation  QuoteStage = "location"
	StageInventory QuoteStage = "inventory"
	StageSchedule  QuoteStage = "schedule"
	StageQuoted    QuoteStage = "quoted"
	StagePaying    QuoteStage = "paying"
	StageDone      QuoteStage = "done"
)

// order maps each stage to its position in the wizard.
var stageOrder = map[QuoteStage]int{
	StageLocation:  0,
	StageInventory: 1,
	StageSchedule:  2,
	StageQuoted:    3,
	StagePaying:    4,
	StageDone:      5,
}

// Before reports whether s comes earlier in the wizard than other.
func (s QuoteStage) Before(other QuoteStage) bool {
	return stageOrder[s] < stageOrder[other]
}

// QuoteSession is the server-held wizard state for one prospective booking,
// cached in Redis under its session id until the quote completes or expires.
type QuoteSession struct {
	ID    string     `json:"id"`
	Stage QuoteStage `json:"stage"`

	StartLocation       string   `json:"startLocation"`
	DestinationLocation string   `json:"destinationLocation"`
	StartLat            *float64 `json:"startLat,omitempty"`
	StartLng            *float64 `json:"startLng,omitempty"`
	DestinationLat      *float64 `json:"destinationLat,omitempty"`
	DestinationLng      *float64 `json:"destinationLng,omitempty"`

	MoveType MoveType          `json:"moveType"`
	Details  *InventoryDetails `json:"details,omitempty"`

	Date string `json:"date"`
	Time string `json:"time"`

	// Set once the quote has been priced and persisted.
	BookingID string `json:"bookingId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
