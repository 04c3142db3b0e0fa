package catalog

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/rest"
)

type ItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Free     bool    `json:"free"`
	Location string  `json:"location,omitempty"`
}

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns all items, optionally filtered with ?category=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing catalog items")

	items := h.catalog.All()
	if value := r.URL.Query().Get("category"); value != "" {
		category, err := ParseCategory(value)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid category", err.Error())
			return
		}
		items = h.catalog.ByCategory(category)
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemToDTO(item))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, ok := h.catalog.Get(id)
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Catalog item not found", id)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ItemToDTO(item))
}

func ItemToDTO(item Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Category: string(item.Category),
		Price:    float64(item.PriceCents()) / 100,
		Free:     item.Free,
		Location: item.Location,
	}
}
