package domain

import "github.com/shopspring/decimal"

// SliderState is the slide-to-confirm interaction state.
type SliderState string

const (
	SliderIdle       SliderState = "idle"
	SliderDragging   SliderState = "dragging"
	SliderConfirmed  SliderState = "confirmed"
	SliderSprungBack SliderState = "sprung_back"
)

// ReleaseOutcome describes what a DragEnd did.
type ReleaseOutcome string

const (
	ReleaseConfirmed  ReleaseOutcome = "confirmed"   // debit applied
	ReleaseRejected   ReleaseOutcome = "rejected"    // past cutoff, validation failed
	ReleaseSprungBack ReleaseOutcome = "sprung_back" // below cutoff, animating home
	ReleaseIgnored    ReleaseOutcome = "ignored"     // no drag in progress
)

// Release is the result of ending a gesture. Debit is set only when
// Outcome is ReleaseConfirmed.
type Release struct {
	Outcome ReleaseOutcome `json:"outcome"`
	Debit   *Debit         `json:"debit,omitempty"`
}

// BucketOption is one selectable payment method with its live balance.
type BucketOption struct {
	Bucket  BucketKind      `json:"bucket"`
	Balance decimal.Decimal `json:"balance"`
}

// SliderView is everything a renderer needs to draw the payment sheet.
type SliderView struct {
	State        SliderState    `json:"state"`
	Offset       float64        `json:"offset"`
	MaxTravel    float64        `json:"max_travel"`
	Cutoff       float64        `json:"cutoff"`
	Bucket       BucketKind     `json:"bucket"`
	Amount       string         `json:"amount"`
	Insufficient bool           `json:"insufficient"`
	RestaurantID string         `json:"restaurant_id,omitempty"`
	Options      []BucketOption `json:"options"`
}
