package transport

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/rest"
)

type PassDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	BestFor     string  `json:"bestFor"`
	Includes    string  `json:"includes"`
	Recommended bool    `json:"recommended,omitempty"`
}

type EstimateDTO struct {
	Type      string  `json:"type"`
	UnitPrice float64 `json:"unitPrice"`
	Trips     int     `json:"trips"`
	Total     float64 `json:"total"`
	Note      string  `json:"note,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListPasses(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing transport passes")
	passes := Passes()
	dtos := make([]PassDTO, 0, len(passes))
	for _, pass := range passes {
		dtos = append(dtos, PassDTO{
			Name:        pass.Name,
			Price:       centsToEuros(pass.Price),
			BestFor:     pass.BestFor,
			Includes:    pass.Includes,
			Recommended: pass.Recommended,
		})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	tripType := r.URL.Query().Get("type")
	estimate, err := EstimateTrip(tripType)
	if err != nil {
		if errors.Is(err, ErrUnknownTripType) {
			rest.WriteError(w, http.StatusNotFound, "Unknown trip type", tripType)
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, "Failed to estimate transport", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, EstimateDTO{
		Type:      string(estimate.Type),
		UnitPrice: centsToEuros(estimate.UnitPrice),
		Trips:     estimate.Trips,
		Total:     centsToEuros(estimate.Total),
		Note:      estimate.Note,
	})
}

func centsToEuros(cents int64) float64 {
	return float64(cents) / 100
}
