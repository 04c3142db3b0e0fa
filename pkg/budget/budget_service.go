package budget

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/pkg/favorites"
)

type Service interface {
	Compute(ctx context.Context, in Inputs) Result
}

type ServiceImpl struct {
	favorites  favorites.Service
	items      Lookup
	calculator *Calculator
}

func NewService(favoritesService favorites.Service, items Lookup, calculator *Calculator) *ServiceImpl {
	return &ServiceImpl{favorites: favoritesService, items: items, calculator: calculator}
}

// Compute prices the current client's favorites. When they cannot be read
// the result is computed from inputs alone.
func (s *ServiceImpl) Compute(ctx context.Context, in Inputs) Result {
	set, err := s.favorites.List(ctx)
	if err != nil {
		log.Warnf("failed to load favorites for budget, using inputs only: %v", err)
		set = favorites.Set{}
	}
	return s.calculator.Compute(set, s.items, in)
}
