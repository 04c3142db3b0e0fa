package transport

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTripType = errors.New("unknown trip type")

// Pass is a public transport ticket option. Prices are in cents.
type Pass struct {
	Name        string
	Price       int64
	BestFor     string
	Includes    string
	Recommended bool
}

// Passes returns the Berlin AB-zone ticket options.
func Passes() []Pass {
	return []Pass{
		{Name: "24-hour ticket AB zones", Price: 1060, BestFor: "Single day intensive sightseeing", Includes: "All public transport in zones A&B"},
		{Name: "48-hour ticket AB zones", Price: 2060, BestFor: "Perfect for 1.5 day trip", Includes: "All public transport in zones A&B", Recommended: true},
		{Name: "Berlin WelcomeCard 48h", Price: 2690, BestFor: "Transport + attraction discounts", Includes: "Public transport + discounts at 170+ attractions + guide"},
		{Name: "Single ticket AB zones", Price: 380, BestFor: "Individual short trips", Includes: "Single 2-hour journey"},
		{Name: "Group day ticket (up to 5 people)", Price: 3330, BestFor: "Groups traveling together", Includes: "All public transport for up to 5 people"},
	}
}

type TripType string

const (
	Single  TripType = "single"
	Day     TripType = "day"
	Weekend TripType = "weekend"
	Welcome TripType = "welcome"
	Group   TripType = "group"
)

// SingleTripsPerWeekend is how many single journeys the itinerary needs.
const SingleTripsPerWeekend = 8

type Estimate struct {
	Type      TripType
	UnitPrice int64
	Trips     int
	Total     int64
	Note      string
}

var estimates = map[TripType]Estimate{
	Single:  {Type: Single, UnitPrice: 380, Trips: SingleTripsPerWeekend, Note: "Estimated 8 trips needed for full itinerary"},
	Day:     {Type: Day, UnitPrice: 1060, Trips: 1},
	Weekend: {Type: Weekend, UnitPrice: 2060, Trips: 1},
	Welcome: {Type: Welcome, UnitPrice: 2690, Trips: 1, Note: "Includes attraction discounts"},
	Group:   {Type: Group, UnitPrice: 3330, Trips: 1},
}

// TripTypes lists the estimator choices in display order.
func TripTypes() []TripType {
	return []TripType{Single, Day, Weekend, Welcome, Group}
}

// EstimateTrip returns the transport cost of the weekend for tripType.
func EstimateTrip(tripType string) (Estimate, error) {
	estimate, ok := estimates[TripType(strings.ToLower(strings.TrimSpace(tripType)))]
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownTripType, tripType)
	}
	estimate.Total = estimate.UnitPrice * int64(estimate.Trips)
	return estimate, nil
}
