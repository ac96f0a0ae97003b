package models

// QuoteRequest is the aggregated location/inventory/schedule payload sent to
// create a booking. Coordinates are optional; when present the distance is
// computed from them, otherwise a per-move-type flat distance is assumed.
type QuoteRequest struct {
	StartLocation       string   `json:"startLocation" binding:"required"`
	DestinationLocation string   `json:"destinationLocation" binding:"required"`
	StartLat            *float64 `json:"startLat,omitempty"`
	StartLng            *float64 `json:"startLng,omitempty"`
	DestinationLat      *float64 `json:"destinationLat,omitempty"`
	DestinationLng      *float64 `json:"destinationLng,omitempty"`

	MoveType MoveType         `json:"moveType" binding:"required"`
	Details  InventoryDetails `json:"details"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
