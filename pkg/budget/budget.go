package budget

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/pkg/catalog"
	"github.com/weekendguide/berlin/pkg/favorites"
)

// Money is an amount in euro cents.
type Money int64

func (m Money) Euros() float64 {
	return float64(m) / 100
}

// FromEuros rounds euros half away from zero to whole cents.
func FromEuros(euros float64) Money {
	return Money(math.Round(euros * 100))
}

// Inputs are the manual fallbacks used when a category has no favorites.
type Inputs struct {
	MuseumPackage    float64 `json:"museumPackage" validate:"gt=0,lte=100000"`
	FoodBudgetPerDay float64 `json:"foodBudgetPerDay" validate:"gt=0,lte=100000"`
	Transport        float64 `json:"transport" validate:"gt=0,lte=100000"`
	Days             float64 `json:"days" validate:"gt=0,lte=365"`
}

// Result is derived from favorites and inputs on every call and never stored.
type Result struct {
	MuseumTotal    Money
	FoodTotal      Money
	TransportTotal Money
	GrandTotal     Money
	// MuseumItems and RestaurantItems count the favorites that were priced.
	// Zero means the total came from Inputs.
	MuseumItems     int
	RestaurantItems int
	Inputs          Inputs
}

type Config struct {
	Defaults         Inputs
	WeekendPassPrice float64
	MealsPerDay      int
}

func DefaultConfig() Config {
	return Config{
		Defaults: Inputs{
			MuseumPackage:    20,
			FoodBudgetPerDay: 15,
			Transport:        8.80,
			Days:             1.5,
		},
		WeekendPassPrice: 16,
		MealsPerDay:      3,
	}
}

// Lookup resolves favorite ids to catalog items.
type Lookup interface {
	Get(id string) (catalog.Item, bool)
}

type Calculator struct {
	config   Config
	validate *validator.Validate
}

// NewCalculator falls back to DefaultConfig for every unset or invalid value of config.
func NewCalculator(config Config) *Calculator {
	c := &Calculator{validate: validator.New()}
	defaults := DefaultConfig()
	c.config = defaults
	c.config.Defaults = c.normalize(config.Defaults, defaults.Defaults)
	if config.WeekendPassPrice > 0 && !math.IsInf(config.WeekendPassPrice, 0) {
		c.config.WeekendPassPrice = config.WeekendPassPrice
	}
	if config.MealsPerDay > 0 {
		c.config.MealsPerDay = config.MealsPerDay
	}
	return c
}

func (c *Calculator) Config() Config {
	return c.config
}

// Normalize replaces every invalid field of in with the configured default.
func (c *Calculator) Normalize(in Inputs) Inputs {
	return c.normalize(in, c.config.Defaults)
}

func (c *Calculator) normalize(in Inputs, defaults Inputs) Inputs {
	err := c.validate.Struct(in)
	if err == nil {
		return in
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		log.Warnf("budget inputs could not be validated, using defaults: %v", err)
		return defaults
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.StructField() {
		case "MuseumPackage":
			in.MuseumPackage = defaults.MuseumPackage
		case "FoodBudgetPerDay":
			in.FoodBudgetPerDay = defaults.FoodBudgetPerDay
		case "Transport":
			in.Transport = defaults.Transport
		case "Days":
			in.Days = defaults.Days
		}
		log.Tracef("budget input %s=%v rejected (%s), using default", fieldErr.Field(), fieldErr.Value(), fieldErr.Tag())
	}
	return in
}

// Compute derives the trip cost from the favorites. Museums and
// attractions are summed, restaurants are averaged per meal, and other
// categories are ignored. Ids missing from items are skipped.
func (c *Calculator) Compute(set favorites.Set, items Lookup, in Inputs) Result {
	in = c.Normalize(in)
	result := Result{Inputs: in}

	var museumCents, restaurantCents int64
	for _, id := range set.IDs() {
		category, ok := catalog.CategoryOf(id)
		if !ok {
			continue
		}
		item, found := items.Get(id)
		if !found {
			log.Debugf("favorite %s is not in the catalog, skipping", id)
			continue
		}
		switch category {
		case catalog.Museum, catalog.Attraction:
			museumCents += item.PriceCents()
			result.MuseumItems++
		case catalog.Restaurant:
			restaurantCents += item.PriceCents()
			result.RestaurantItems++
		}
	}

	if result.MuseumItems > 0 {
		result.MuseumTotal = Money(museumCents)
	} else {
		result.MuseumTotal = FromEuros(in.MuseumPackage)
	}

	if result.RestaurantItems > 0 {
		mean := float64(restaurantCents) / float64(result.RestaurantItems)
		result.FoodTotal = Money(math.Round(mean * float64(c.config.MealsPerDay) * in.Days))
	} else {
		result.FoodTotal = Money(math.Round(float64(FromEuros(in.FoodBudgetPerDay)) * in.Days))
	}

	transport := FromEuros(in.Transport)
	if in.Transport == c.config.WeekendPassPrice {
		result.TransportTotal = transport
	} else {
		result.TransportTotal = transport * Money(math.Ceil(in.Days))
	}

	result.GrandTotal = result.MuseumTotal + result.FoodTotal + result.TransportTotal
	return result
}

// Compute uses DefaultConfig.
func Compute(set favorites.Set, items Lookup, in Inputs) Result {
	return NewCalculator(DefaultConfig()).Compute(set, items, in)
}

// ParseInputs reads the manual inputs from query values. Missing or
// unparsable values stay zero and are later replaced by defaults.
func ParseInputs(values url.Values) Inputs {
	return Inputs{
		MuseumPackage:    parseNumber(values.Get("museumPackage")),
		FoodBudgetPerDay: parseNumber(values.Get("foodBudgetPerDay")),
		Transport:        parseNumber(values.Get("transport")),
		Days:             parseNumber(values.Get("days")),
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "€"))
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		log.Debugf("ignoring budget input %q: %v", s, err)
		return 0
	}
	return value
}
