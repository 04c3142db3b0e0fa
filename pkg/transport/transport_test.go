package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTrip(t *testing.T) {
	tests := []struct {
		tripType string
		total    int64
		trips    int
		hasNote  bool
	}{
		{"single", 3040, 8, true},
		{"day", 1060, 1, false},
		{"weekend", 2060, 1, false},
		{"welcome", 2690, 1, true},
		{"group", 3330, 1, false},
		{" Weekend ", 2060, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.tripType, func(t *testing.T) {
			estimate, err := EstimateTrip(tt.tripType)

			require.NoError(t, err)
			assert.Equal(t, tt.total, estimate.Total)
			assert.Equal(t, tt.trips, estimate.Trips)
			assert.Equal(t, tt.hasNote, estimate.Note != "")
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := EstimateTrip("taxi")
		assert.ErrorIs(t, err, ErrUnknownTripType)
	})
}

func TestPasses(t *testing.T) {
	passes := Passes()

	require.Len(t, passes, 5)
	recommended := 0
	for _, pass := range passes {
		if pass.Recommended {
			recommended++
			assert.Equal(t, int64(2060), pass.Price)
		}
	}
	assert.Equal(t, 1, recommended)
	assert.Len(t, TripTypes(), 5)
}

func TestHandler(t *testing.T) {
	handler := NewHandler()

	t.Run("should list passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListPasses(w, httptest.NewRequest(http.MethodGet, "/api/transport", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var passes []PassDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&passes))
		assert.Equal(t, 10.6, passes[0].Price)
	})

	t.Run("should estimate", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Estimate(w, httptest.NewRequest(http.MethodGet, "/api/transport/estimate?type=single", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var estimate EstimateDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&estimate))
		assert.Equal(t, 30.4, estimate.Total)
		assert.Equal(t, 3.8, estimate.UnitPrice)
	})

	t.Run("should return 404 for unknown type", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Estimate(w, httptest.NewRequest(http.MethodGet, "/api/transport/estimate?type=taxi", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
