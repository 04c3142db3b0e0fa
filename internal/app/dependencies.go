package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/config"
	"github.com/weekendguide/berlin/internal/database"
	"github.com/weekendguide/berlin/internal/event_bus"
	"github.com/weekendguide/berlin/internal/utils"
	"github.com/weekendguide/berlin/pkg/budget"
	"github.com/weekendguide/berlin/pkg/catalog"
	"github.com/weekendguide/berlin/pkg/favorites"
	"github.com/weekendguide/berlin/pkg/itinerary"
	"github.com/weekendguide/berlin/pkg/transport"
	"golang.org/x/text/language"
)

// StorageProvider returns the favorites storage of the client behind r.
type StorageProvider func(w http.ResponseWriter, r *http.Request) (favorites.Storage, error)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	Catalog        *catalog.Catalog
	CatalogHandler *catalog.Handler

	// Storage is nil when persistence is disabled.
	Storage          StorageProvider
	FavoritesService *favorites.ServiceImpl
	FavoritesHandler *favorites.Handler

	BudgetCalculator  *budget.Calculator
	BudgetService     *budget.ServiceImpl
	CsvBudgetRenderer *budget.CsvRendererImpl
	BudgetHandler     *budget.Handler

	Plan             *itinerary.Plan
	ItineraryService *itinerary.ServiceImpl
	ItineraryHandler *itinerary.Handler

	TransportHandler *transport.Handler

	closers []func()
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(ctx context.Context, cfg config.Application, clock utils.Clock) (*Dependencies, error) {
	deps := &Dependencies{Clock: clock, EventBus: event_bus.NewEventBus()}
	subscribeAuditLog(deps.EventBus)

	items, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	deps.Catalog = items
	deps.CatalogHandler = catalog.NewHandler(items)

	storage, err := deps.buildStorage(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Storage = storage

	opts := favorites.DefaultOptions()
	opts.Retention = cfg.Favorites.Retention
	opts.Persist = storage != nil
	opts.Known = items.Has
	deps.FavoritesService = favorites.NewService(opts, deps.EventBus, event_bus.FavoritesChangedEvent)
	deps.FavoritesHandler = favorites.NewHandler(deps.FavoritesService, items)

	deps.BudgetCalculator = budget.NewCalculator(budget.Config{
		Defaults: budget.Inputs{
			MuseumPackage:    cfg.Budget.MuseumPackage,
			FoodBudgetPerDay: cfg.Budget.FoodBudgetPerDay,
			Transport:        cfg.Budget.Transport,
			Days:             cfg.Budget.Days,
		},
		WeekendPassPrice: cfg.Budget.WeekendPassPrice,
		MealsPerDay:      cfg.Budget.MealsPerDay,
	})
	deps.BudgetService = budget.NewService(deps.FavoritesService, items, deps.BudgetCalculator)
	deps.CsvBudgetRenderer = budget.NewCsvRenderer()
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService, deps.CsvBudgetRenderer, budget.NewFormatter(language.Make(cfg.Budget.Language)))

	deps.Plan = itinerary.Weekend()
	deps.ItineraryService = itinerary.NewService(deps.Plan, opts, deps.EventBus)
	deps.ItineraryHandler = itinerary.NewHandler(deps.ItineraryService)

	deps.TransportHandler = transport.NewHandler()

	return deps, nil
}

// LoadCatalog reads the CSV catalog when configured and falls back to the built-in one.
func LoadCatalog(cfg config.Catalog) (*catalog.Catalog, error) {
	if cfg.CSVPath == "" {
		return catalog.Berlin(), nil
	}
	items, err := catalog.LoadFile(cfg.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Infof("Loaded %d catalog items from %s", items.Len(), cfg.CSVPath)
	return items, nil
}

func (d *Dependencies) buildStorage(ctx context.Context, cfg config.Application) (StorageProvider, error) {
	fav := cfg.Favorites
	cookieOpts := favorites.CookieOptions{Prefix: fav.CookiePrefix, Path: fav.Path, Secure: fav.Secure}

	switch fav.Persistence {
	case config.PersistenceNone:
		log.Info("Favorites persistence disabled")
		return nil, nil
	case config.PersistenceCookie:
		return func(w http.ResponseWriter, r *http.Request) (favorites.Storage, error) {
			return favorites.NewCookieStorage(w, r, cookieOpts, d.Clock), nil
		}, nil
	case config.PersistenceMemory:
		return sessionStorage(favorites.NewMemoryStorage(d.Clock), fav, d.Clock), nil
	case config.PersistenceRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		d.closers = append(d.closers, func() { _ = client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Infof("Storing favorites in redis at %s", cfg.Redis.Addr)
		return sessionStorage(favorites.NewRedisStorage(client, cfg.Redis.KeyPrefix), fav, d.Clock), nil
	case config.PersistencePostgres:
		pool, err := openPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, pool.Close)
		storage := favorites.NewPostgresStorage(pool, d.Clock)
		if deleted, err := storage.DeleteExpired(ctx); err != nil {
			log.Warnf("failed to purge expired favorites: %v", err)
		} else if deleted > 0 {
			log.Infof("Purged %d expired favorites entries", deleted)
		}
		return sessionStorage(storage, fav, d.Clock), nil
	default:
		return nil, fmt.Errorf("unknown favorites persistence %q", fav.Persistence)
	}
}

func openPostgres(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	pool, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(cfg); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Close releases connections opened by BuildDependencies.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

func subscribeAuditLog(bus *event_bus.EventBus) {
	for _, eventType := range []event_bus.EventType{event_bus.FavoritesChangedEvent, event_bus.ItineraryCompletedChangedEvent} {
		event_bus.SubscribeTyped(bus, eventType, func(e event_bus.EventT[event_bus.SetChanged]) error {
			log.WithFields(log.Fields{
				"event":   e.Type,
				"action":  e.Data.Action,
				"ids":     e.Data.IDs,
				"current": len(e.Data.Current),
			}).Debug("state changed")
			return nil
		})
	}
}
