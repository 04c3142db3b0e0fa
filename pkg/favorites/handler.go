package favorites

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/rest"
	"github.com/weekendguide/berlin/pkg/catalog"
)

type FavoritesDTO struct {
	IDs   []string          `json:"ids"`
	Items []catalog.ItemDTO `json:"items"`
}

type ReorderDTO struct {
	ID       string `json:"id" validate:"required"`
	TargetID string `json:"targetId" validate:"required"`
}

type Handler struct {
	service  Service
	catalog  *catalog.Catalog
	validate *validator.Validate
}

func NewHandler(service Service, catalog *catalog.Catalog) *Handler {
	return &Handler{service: service, catalog: catalog, validate: validator.New()}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing favorites")
	set, err := h.service.List(r.Context())
	if err != nil {
		log.Errorf("failed to list favorites: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to load favorites", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.toDTO(set))
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.Debugf("Toggling favorite %s", id)

	set, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			rest.WriteError(w, http.StatusNotFound, "Catalog item not found", id)
			return
		}
		log.Errorf("failed to toggle favorite %s: %v", id, err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to toggle favorite", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.toDTO(set))
}

// Reorder is the drop target of the drag gesture: it swaps the dragged id with
// the id it was dropped on. Dropping an id on itself returns the list unchanged.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var dto ReorderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid reorder request", err.Error())
		return
	}

	set, err := h.service.Reorder(r.Context(), dto.ID, dto.TargetID)
	if err != nil {
		log.Errorf("failed to reorder favorites: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to reorder favorites", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, h.toDTO(set))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Clear(r.Context()); err != nil {
		log.Errorf("failed to clear favorites: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Failed to clear favorites", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toDTO(set Set) FavoritesDTO {
	ids := set.IDs()
	items := make([]catalog.ItemDTO, 0, len(ids))
	for _, id := range ids {
		item, ok := h.catalog.Get(id)
		if !ok {
			continue
		}
		items = append(items, catalog.ItemToDTO(item))
	}
	return FavoritesDTO{IDs: ids, Items: items}
}
