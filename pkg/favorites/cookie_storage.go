package favorites

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weekendguide/berlin/internal/utils"
)

type CookieOptions struct {
	// Prefix is prepended to every key to form the cookie name.
	Prefix string
	Path   string
	Secure bool
}

// CookieStorage persists values as cookies of one request/response pair.
// Values are query-escaped so JSON survives the cookie value grammar.
type CookieStorage struct {
	w       http.ResponseWriter
	r       *http.Request
	opts    CookieOptions
	clock   utils.Clock
	written map[string]*string
}

func NewCookieStorage(w http.ResponseWriter, r *http.Request, opts CookieOptions, clock utils.Clock) *CookieStorage {
	if opts.Path == "" {
		opts.Path = "/"
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &CookieStorage{w: w, r: r, opts: opts, clock: clock, written: make(map[string]*string)}
}

func (c *CookieStorage) Get(_ context.Context, key string) (string, bool, error) {
	if value, ok := c.written[key]; ok {
		if value == nil {
			return "", false, nil
		}
		return *value, true, nil
	}

	cookie, err := c.r.Cookie(c.opts.Prefix + key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", false, nil
		}
		return "", false, err
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false, fmt.Errorf("decode cookie %s: %w", cookie.Name, err)
	}
	return value, true, nil
}

func (c *CookieStorage) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	cookie := &http.Cookie{
		Name:     c.opts.Prefix + key,
		Value:    url.QueryEscape(value),
		Path:     c.opts.Path,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.Expires = c.clock.Now().Add(ttl).UTC()
		cookie.MaxAge = int(ttl.Seconds())
	}
	http.SetCookie(c.w, cookie)
	c.written[key] = &value
	return nil
}

func (c *CookieStorage) Clear(_ context.Context, key string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.opts.Prefix + key,
		Value:    "",
		Path:     c.opts.Path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
	c.written[key] = nil
	return nil
}
