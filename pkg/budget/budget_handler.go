package budget

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/rest"
)

type ResultDTO struct {
	MuseumTotal     float64   `json:"museumTotal"`
	FoodTotal       float64   `json:"foodTotal"`
	TransportTotal  float64   `json:"transportTotal"`
	GrandTotal      float64   `json:"grandTotal"`
	MuseumItems     int       `json:"museumItems"`
	RestaurantItems int       `json:"restaurantItems"`
	Inputs          Inputs    `json:"inputs"`
	Formatted       Breakdown `json:"formatted"`
}

type Handler struct {
	service   Service
	renderer  Renderer
	formatter *Formatter
}

func NewHandler(service Service, renderer Renderer, formatter *Formatter) *Handler {
	return &Handler{service: service, renderer: renderer, formatter: formatter}
}

// Get computes the budget from the client's favorites and the manual inputs
// in the query string. ?format=csv returns the breakdown as a CSV file.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log.Debug("Computing budget")
	query := r.URL.Query()
	result := h.service.Compute(r.Context(), ParseInputs(query))

	if query.Get("format") == "csv" {
		csv, err := h.renderer.RenderBudget(result)
		if err != nil {
			rest.WriteError(w, http.StatusInternalServerError, "Failed to render budget", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"berlin-budget.csv\"")
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("failed to write budget csv: %v", err)
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, h.toDTO(result))
}

func (h *Handler) toDTO(result Result) ResultDTO {
	return ResultDTO{
		MuseumTotal:     result.MuseumTotal.Euros(),
		FoodTotal:       result.FoodTotal.Euros(),
		TransportTotal:  result.TransportTotal.Euros(),
		GrandTotal:      result.GrandTotal.Euros(),
		MuseumItems:     result.MuseumItems,
		RestaurantItems: result.RestaurantItems,
		Inputs:          result.Inputs,
		Formatted:       h.formatter.Breakdown(result),
	}
}
