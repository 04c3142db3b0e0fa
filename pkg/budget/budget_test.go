package budget

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekendguide/berlin/pkg/catalog"
	"github.com/weekendguide/berlin/pkg/favorites"
	"golang.org/x/text/language"
)

var testCatalog = catalog.New([]catalog.Entry{
	{Category: catalog.Museum, Name: "Pergamon", Price: 1200},
	{Category: catalog.Museum, Name: "DDR Museum", Price: 980},
	{Category: catalog.Attraction, Name: "Brandenburg Gate", Free: true},
	{Category: catalog.Restaurant, Name: "Curry 36", Price: 1000},
	{Category: catalog.Restaurant, Name: "Café Krone", Price: 2000},
	{Category: catalog.Restaurant, Name: "Prater", Price: 1500},
	{Category: catalog.Neighborhood, Name: "Kreuzberg", Free: true},
})

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		inputs    Inputs
		museum    Money
		food      Money
		transport Money
		grand     Money
	}{
		{
			name:      "manual inputs without favorites",
			inputs:    Inputs{MuseumPackage: 20, FoodBudgetPerDay: 15, Transport: 8.80, Days: 1.5},
			museum:    2000,
			food:      2250,
			transport: 1760,
			grand:     6010,
		},
		{
			name:      "zero inputs use defaults",
			inputs:    Inputs{},
			museum:    2000,
			food:      2250,
			transport: 1760,
			grand:     6010,
		},
		{
			name:      "restaurant favorites are averaged per meal",
			ids:       []string{"restaurant_0", "restaurant_1"},
			inputs:    Inputs{Days: 2},
			museum:    2000,
			food:      9000,
			transport: 1760,
			grand:     12760,
		},
		{
			name:      "museum and attraction favorites are summed with free as zero",
			ids:       []string{"museum_0", "attraction_0", "museum_1"},
			inputs:    Inputs{Days: 1},
			museum:    2180,
			food:      1500,
			transport: 880,
			grand:     4560,
		},
		{
			name:      "restaurant mean over fractional days",
			ids:       []string{"restaurant_0", "restaurant_2"},
			inputs:    Inputs{Days: 1.5},
			museum:    2000,
			food:      5625,
			transport: 1760,
			grand:     9385,
		},
		{
			name:      "unknown and uncategorised ids are skipped",
			ids:       []string{"museum_9", "neighborhood_0", "hotel_1", "restaurant_7"},
			inputs:    Inputs{Days: 1},
			museum:    2000,
			food:      1500,
			transport: 880,
			grand:     4380,
		},
		{
			name:      "repeated ids are counted once",
			ids:       []string{"museum_0", "museum_0", "restaurant_0", "restaurant_0", "restaurant_1"},
			inputs:    Inputs{Days: 1},
			museum:    1200,
			food:      4500,
			transport: 880,
			grand:     6580,
		},
		{
			name:      "invalid inputs fall back per field",
			inputs:    Inputs{MuseumPackage: -5, FoodBudgetPerDay: math.NaN(), Transport: math.Inf(1), Days: 2},
			museum:    2000,
			food:      3000,
			transport: 1760,
			grand:     6760,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(favorites.NewSet(tt.ids...), testCatalog, tt.inputs)

			assert.Equal(t, tt.museum, result.MuseumTotal, "museum")
			assert.Equal(t, tt.food, result.FoodTotal, "food")
			assert.Equal(t, tt.transport, result.TransportTotal, "transport")
			assert.Equal(t, tt.grand, result.GrandTotal, "grand")
		})
	}
}

func TestCompute_WeekendPassIsFlat(t *testing.T) {
	for _, days := range []float64{1, 1.5, 3} {
		result := Compute(favorites.Set{}, testCatalog, Inputs{Transport: 16, Days: days})

		assert.Equal(t, Money(1600), result.TransportTotal, "days=%v", days)
	}
}

func TestCompute_WeekendPassMatchesExactPrice(t *testing.T) {
	for _, transport := range []float64{16.004, 15.996} {
		result := Compute(favorites.Set{}, testCatalog, Inputs{Transport: transport, Days: 3})

		assert.Equal(t, Money(4800), result.TransportTotal, "transport=%v", transport)
	}
}

func TestCompute_ReportsSources(t *testing.T) {
	result := Compute(favorites.NewSet("museum_0", "restaurant_1"), testCatalog, Inputs{})

	assert.Equal(t, 1, result.MuseumItems)
	assert.Equal(t, 1, result.RestaurantItems)
	assert.Equal(t, DefaultConfig().Defaults, result.Inputs)
}

func TestNewCalculator_CustomConfig(t *testing.T) {
	// given
	calculator := NewCalculator(Config{
		Defaults:         Inputs{MuseumPackage: 30, Days: -1},
		WeekendPassPrice: 20.60,
		MealsPerDay:      2,
	})

	// when
	result := calculator.Compute(favorites.NewSet("restaurant_0"), testCatalog, Inputs{Transport: 20.60})

	// then
	assert.Equal(t, 30.0, calculator.Config().Defaults.MuseumPackage)
	assert.Equal(t, 1.5, calculator.Config().Defaults.Days)
	assert.Equal(t, Money(3000), result.MuseumTotal)
	assert.Equal(t, Money(3000), result.FoodTotal)
	assert.Equal(t, Money(2060), result.TransportTotal)
}

func TestParseInputs(t *testing.T) {
	values := url.Values{
		"museumPackage":    {"25"},
		"foodBudgetPerDay": {"12,50"},
		"transport":        {"€8.80"},
		"days":             {"two"},
	}

	in := ParseInputs(values)

	assert.Equal(t, Inputs{MuseumPackage: 25, FoodBudgetPerDay: 12.5, Transport: 8.8}, in)
}

func TestFormatter(t *testing.T) {
	formatter := NewFormatter(language.English)

	assert.Equal(t, "€60.10", formatter.Format(6010))
	assert.Equal(t, "€0.00", formatter.Format(0))

	breakdown := formatter.Breakdown(Compute(favorites.Set{}, testCatalog, Inputs{}))
	assert.Equal(t, Breakdown{Museum: "€20.00", Food: "€22.50", Transport: "€17.60", Grand: "€60.10"}, breakdown)
}

func TestCsvRendererImpl_RenderBudget(t *testing.T) {
	result := Compute(favorites.NewSet("restaurant_0", "restaurant_1"), testCatalog, Inputs{Days: 2})

	csv, err := NewCsvRenderer().RenderBudget(result)

	require.NoError(t, err)
	assert.Equal(t, "Category,Source,Total (EUR)\n"+
		"Museums & attractions,estimate,20.00\n"+
		"Food,favorites (2),90.00\n"+
		"Transport,estimate,17.60\n"+
		"Total,,127.60\n"+
		"Days,,2\n", csv)
}

type stubFavoritesService struct {
	set favorites.Set
	err error
}

func (s *stubFavoritesService) List(context.Context) (favorites.Set, error) { return s.set, s.err }
func (s *stubFavoritesService) Toggle(context.Context, string) (favorites.Set, error) {
	return s.set, s.err
}
func (s *stubFavoritesService) Reorder(context.Context, string, string) (favorites.Set, error) {
	return s.set, s.err
}
func (s *stubFavoritesService) Clear(context.Context) (favorites.Set, error) { return s.set, s.err }

func TestService_Compute(t *testing.T) {
	t.Run("should price current favorites", func(t *testing.T) {
		stub := &stubFavoritesService{set: favorites.NewSet("museum_0")}
		service := NewService(stub, testCatalog, NewCalculator(DefaultConfig()))

		result := service.Compute(context.Background(), Inputs{})

		assert.Equal(t, Money(1200), result.MuseumTotal)
	})

	t.Run("should fall back to inputs when favorites cannot be read", func(t *testing.T) {
		stub := &stubFavoritesService{err: errors.New("no storage")}
		service := NewService(stub, testCatalog, NewCalculator(DefaultConfig()))

		result := service.Compute(context.Background(), Inputs{})

		assert.Equal(t, Money(6010), result.GrandTotal)
	})
}

func TestHandler_Get(t *testing.T) {
	stub := &stubFavoritesService{set: favorites.NewSet("restaurant_0", "restaurant_1")}
	handler := NewHandler(
		NewService(stub, testCatalog, NewCalculator(DefaultConfig())),
		NewCsvRenderer(),
		NewFormatter(language.English),
	)

	t.Run("should return json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/budget?days=2", nil)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var dto ResultDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, 90.0, dto.FoodTotal)
		assert.Equal(t, 127.6, dto.GrandTotal)
		assert.Equal(t, 2, dto.RestaurantItems)
		assert.Equal(t, "€127.60", dto.Formatted.Grand)
	})

	t.Run("should return csv", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/budget?days=2&format=csv", nil)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "Total,,127.60")
	})
}
