package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekendguide/berlin/internal/config"
	"github.com/weekendguide/berlin/internal/utils"
	"github.com/weekendguide/berlin/pkg/budget"
	"github.com/weekendguide/berlin/pkg/favorites"
	"github.com/weekendguide/berlin/pkg/itinerary"
)

type client struct {
	t      *testing.T
	server *httptest.Server
	http   *http.Client
}

func newClient(t *testing.T, persistence string) *client {
	t.Helper()
	cfg := config.Defaults()
	cfg.Favorites.Persistence = persistence

	deps, err := BuildDependencies(context.Background(), cfg, utils.SystemClock{})
	require.NoError(t, err)
	t.Cleanup(deps.Close)

	server := httptest.NewServer(NewRouter(deps))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, server: server, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path, body string, out any) int {
	c.t.Helper()
	req, err := http.NewRequest(method, c.server.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestApplication_FavoritesDriveBudget(t *testing.T) {
	for _, persistence := range []string{config.PersistenceCookie, config.PersistenceMemory} {
		t.Run(persistence, func(t *testing.T) {
			c := newClient(t, persistence)

			// given no favorites the budget comes from defaults
			var result budget.ResultDTO
			require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/budget", "", &result))
			assert.Equal(t, 60.1, result.GrandTotal)

			// when two restaurants are favorited
			var set favorites.FavoritesDTO
			require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/favorites/restaurant_0/toggle", "", &set))
			require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/favorites/restaurant_1/toggle", "", &set))
			require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/favorites/order", `{"id":"restaurant_1","targetId":"restaurant_0"}`, &set))

			// then the next requests see them
			require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/favorites", "", &set))
			assert.Equal(t, []string{"restaurant_1", "restaurant_0"}, set.IDs)
			require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/budget?days=2", "", &result))
			assert.Equal(t, 2, result.RestaurantItems)
		})
	}
}

func TestApplication_WithoutPersistence(t *testing.T) {
	c := newClient(t, config.PersistenceNone)

	var set favorites.FavoritesDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/favorites/museum_0/toggle", "", &set))
	assert.Equal(t, []string{"museum_0"}, set.IDs)

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/favorites", "", &set))
	assert.Empty(t, set.IDs)
}

func TestApplication_Itinerary(t *testing.T) {
	c := newClient(t, config.PersistenceCookie)

	var progress itinerary.ProgressDTO
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/itinerary/0/toggle", "", &progress))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/itinerary", "", &progress))

	assert.Equal(t, "1/12", progress.Progress)
	assert.Equal(t, int64(270), progress.RemainingCost)
}

func TestApplication_RoutesAndErrors(t *testing.T) {
	c := newClient(t, config.PersistenceMemory)

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/catalog?category=museum", "", nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/catalog/museum_99", "", nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/favorites/hotel_1/toggle", "", nil))
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/transport", "", nil))
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/transport/estimate?type=weekend", "", nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/transport/estimate?type=taxi", "", nil))
}

func TestLoadCatalog(t *testing.T) {
	t.Run("should use built-in catalog by default", func(t *testing.T) {
		items, err := LoadCatalog(config.Catalog{})

		require.NoError(t, err)
		assert.True(t, items.Has("attraction_0"))
	})

	t.Run("should load csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte("category,name,price\nmuseum,Bode,14\n"), 0o600))

		items, err := LoadCatalog(config.Catalog{CSVPath: path})

		require.NoError(t, err)
		assert.Equal(t, 1, items.Len())
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := LoadCatalog(config.Catalog{CSVPath: filepath.Join(t.TempDir(), "nope.csv")})

		assert.Error(t, err)
	})
}

func TestSessionStorage(t *testing.T) {
	cfg := config.Defaults().Favorites
	shared := favorites.NewMemoryStorage(nil)
	provider := sessionStorage(shared, cfg, utils.SystemClock{})

	t.Run("should issue a session cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, err := provider(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cfg.SessionCookie, cookies[0].Name)
		assert.Len(t, cookies[0].Value, 36)
	})

	t.Run("should keep a valid session and replace a forged one", func(t *testing.T) {
		valid := "0b8f4a8e-7c1d-4f0e-9a55-3c2b1d0e9f11"
		for value, keep := range map[string]bool{valid: true, "../../etc": false} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: value})
			w := httptest.NewRecorder()

			_, err := provider(w, r)

			require.NoError(t, err)
			assert.Equal(t, keep, w.Result().Cookies()[0].Value == value, value)
		}
	})
}
