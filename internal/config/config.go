package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const (
	PersistenceCookie   = "cookie"
	PersistenceMemory   = "memory"
	PersistenceRedis    = "redis"
	PersistencePostgres = "postgres"
	PersistenceNone     = "none"
)

type Application struct {
	Host      string    `koanf:"host" validate:"required"`
	Port      int       `koanf:"port" validate:"min=1,max=65535"`
	Catalog   Catalog   `koanf:"catalog"`
	Favorites Favorites `koanf:"favorites"`
	Budget    Budget    `koanf:"budget"`
	Redis     Redis     `koanf:"redis"`
	Database  Database  `koanf:"db"`
}

type Catalog struct {
	// CSVPath replaces the built-in catalog when set.
	CSVPath string `koanf:"csvpath"`
}

type Favorites struct {
	Persistence   string        `koanf:"persistence" validate:"oneof=cookie memory redis postgres none"`
	CookiePrefix  string        `koanf:"cookieprefix"`
	SessionCookie string        `koanf:"sessioncookie" validate:"required"`
	Retention     time.Duration `koanf:"retention" validate:"gt=0"`
	Path          string        `koanf:"path" validate:"required,startswith=/"`
	Secure        bool          `koanf:"secure"`
}

type Budget struct {
	MuseumPackage    float64 `koanf:"museumpackage" validate:"gt=0"`
	FoodBudgetPerDay float64 `koanf:"foodbudgetperday" validate:"gt=0"`
	Transport        float64 `koanf:"transport" validate:"gt=0"`
	Days             float64 `koanf:"days" validate:"gt=0"`
	WeekendPassPrice float64 `koanf:"weekendpassprice" validate:"gt=0"`
	MealsPerDay      int     `koanf:"mealsperday" validate:"gt=0"`
	Language         string  `koanf:"language" validate:"required,bcp47_language_tag"`
}

type Redis struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db" validate:"min=0"`
	KeyPrefix string `koanf:"keyprefix"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Defaults() Application {
	return Application{
		Host: "0.0.0.0",
		Port: 8181,
		Favorites: Favorites{
			Persistence:   PersistenceCookie,
			CookiePrefix:  "",
			SessionCookie: "guide_session",
			Retention:     365 * 24 * time.Hour,
			Path:          "/",
		},
		Budget: Budget{
			MuseumPackage:    20,
			FoodBudgetPerDay: 15,
			Transport:        8.80,
			Days:             1.5,
			WeekendPassPrice: 16,
			MealsPerDay:      3,
			Language:         "en",
		},
		Redis: Redis{
			Addr:      "localhost:6379",
			KeyPrefix: "guide:",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "guide",
			Pass:   "",
			Name:   "guide",
			Schema: "public",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "GUIDE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "GUIDE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Validate reports every invalid setting at once.
func (a Application) Validate() error {
	if err := validator.New().Struct(a); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.Favorites.Persistence == PersistenceRedis && a.Redis.Addr == "" {
		return fmt.Errorf("invalid configuration: redis.addr is required for redis persistence")
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (a Application) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}
