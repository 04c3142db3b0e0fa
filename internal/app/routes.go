package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Catalog
	r.HandleFunc("/api/catalog", deps.CatalogHandler.List).Methods("GET")
	r.HandleFunc("/api/catalog/{id}", deps.CatalogHandler.Get).Methods("GET")

	// Favorites
	r.HandleFunc("/api/favorites", deps.FavoritesHandler.List).Methods("GET")
	r.HandleFunc("/api/favorites", deps.FavoritesHandler.Clear).Methods("DELETE")
	r.HandleFunc("/api/favorites/order", deps.FavoritesHandler.Reorder).Methods("PUT")
	r.HandleFunc("/api/favorites/{id}/toggle", deps.FavoritesHandler.Toggle).Methods("POST")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.Get).Methods("GET")

	// Itinerary
	r.HandleFunc("/api/itinerary", deps.ItineraryHandler.Get).Methods("GET")
	r.HandleFunc("/api/itinerary/{index}/toggle", deps.ItineraryHandler.Toggle).Methods("POST")

	// Transport
	r.HandleFunc("/api/transport", deps.TransportHandler.ListPasses).Methods("GET")
	r.HandleFunc("/api/transport/estimate", deps.TransportHandler.Estimate).Queries("type", "{type}").Methods("GET")
}
