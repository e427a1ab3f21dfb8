package entity

import "time"

type OfferType string

const (
	OfferTypePlace          OfferType = "place"
	OfferTypeActivity       OfferType = "activity"
	OfferTypeTransportation OfferType = "transportation"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type PlaceDetails struct {
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

type ActivityDetails struct {
	Schedule   time.Time  `json:"schedule"`
	Difficulty Difficulty `json:"difficulty"`
}

type TransportationDetails struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  int    `json:"duration"`
}

// Offer is a bookable listing. Exactly one of the variant payloads
// (Place, Activity, Transportation) is populated, selected by Type.
type Offer struct {
	ID             string                 `json:"id" db:"id"`
	Type           OfferType              `json:"type" db:"type"`
	Title          string                 `json:"title" db:"title"`
	Description    string                 `json:"description,omitempty" db:"description"`
	Price          float64                `json:"price" db:"price"`
	OwnerID        string                 `json:"owner_id" db:"owner_id"`
	IsActive       bool                   `json:"is_active" db:"is_active"`
	Location       *Location              `json:"location,omitempty" db:"location"`
	Place          *PlaceDetails          `json:"place,omitempty" db:"place"`
	Activity       *ActivityDetails       `json:"activity,omitempty" db:"activity"`
	Transportation *TransportationDetails `json:"transportation,omitempty" db:"transportation"`
	CreatedAt      time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at" db:"updated_at"`
}

// Validate checks the type-conditional payload and clears the variants
// that do not match Type, so at most one survives persistence.
func (o *Offer) Validate() error {
	if o.Title == "" {
		return ErrOfferTitleRequired
	}
	if o.Price <= 0 {
		return ErrOfferPriceInvalid
	}

	switch o.Type {
	case OfferTypePlace:
		if o.Place == nil || o.Place.Address == "" || o.Place.Capacity <= 0 {
			return ErrPlaceDataRequired
		}
		o.Activity = nil
		o.Transportation = nil
	case OfferTypeActivity:
		if o.Activity == nil || o.Activity.Schedule.IsZero() || !o.Activity.Difficulty.valid() {
			return ErrActivityDataRequired
		}
		o.Place = nil
		o.Transportation = nil
	case OfferTypeTransportation:
		if o.Transportation == nil || o.Transportation.Departure == "" ||
			o.Transportation.Arrival == "" || o.Transportation.Duration <= 0 {
			return ErrTransportationDataRequired
		}
		o.Place = nil
		o.Activity = nil
	default:
		return ErrOfferTypeInvalid
	}

	return nil
}

func (d Difficulty) valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
