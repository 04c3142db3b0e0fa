package itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/rest"
)

type ActivityDTO struct {
	Index     int    `json:"index"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Duration  string `json:"duration"`
	Cost      string `json:"cost"`
	Tips      string `json:"tips,omitempty"`
	Completed bool   `json:"completed"`
}

type ProgressDTO struct {
	Activities    []ActivityDTO `json:"activities"`
	RemainingCost int64         `json:"remainingCost"`
	Completed     int           `json:"completed"`
	Total         int           `json:"total"`
	Progress      string        `json:"progress"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting itinerary")
	progress, err := h.service.Get(r.Context())
	if err != nil {
		log.Errorf("failed to get itinerary: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to load itinerary", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, ProgressToDTO(progress))
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	indexString := mux.Vars(r)["index"]
	index, err := strconv.Atoi(indexString)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid activity index", indexString)
		return
	}
	log.Debugf("Toggling activity %d", index)

	progress, err := h.service.Toggle(r.Context(), index)
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Activity not found", indexString)
			return
		}
		log.Errorf("failed to toggle activity %d: %v", index, err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to toggle activity", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, ProgressToDTO(progress))
}

func ProgressToDTO(progress Progress) ProgressDTO {
	activities := make([]ActivityDTO, 0, len(progress.Activities))
	for _, activity := range progress.Activities {
		activities = append(activities, ActivityDTO{
			Index:     activity.Index,
			Day:       activity.Day,
			Time:      activity.Time,
			Name:      activity.Name,
			Location:  activity.Location,
			Duration:  activity.Duration,
			Cost:      activity.Cost,
			Tips:      activity.Tips,
			Completed: progress.Completed.Contains(activity.ID()),
		})
	}
	return ProgressDTO{
		Activities:    activities,
		RemainingCost: progress.Summary.RemainingEuros,
		Completed:     progress.Summary.Completed,
		Total:         progress.Summary.Total,
		Progress:      progress.Summary.Progress(),
	}
}
