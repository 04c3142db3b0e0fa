package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/utils"
)

// farFuture stands in for "never expires" so expires_at can stay NOT NULL.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// PgxQuerier is the subset of pgxpool.Pool used by PostgresStorage.
type PgxQuerier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// PostgresStorage keeps values in the favorites_state table.
type PostgresStorage struct {
	db    PgxQuerier
	clock utils.Clock
}

func NewPostgresStorage(db PgxQuerier, clock utils.Clock) *PostgresStorage {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &PostgresStorage{db: db, clock: clock}
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM favorites_state WHERE state_key = $1 AND expires_at > $2`

	var value string
	err := s.db.QueryRow(ctx, query, key, s.clock.Now().UTC()).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		err = fmt.Errorf("could not read state %s: %w", key, err)
		log.Error(err)
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	query := `INSERT INTO favorites_state (state_key, value, expires_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (state_key) DO UPDATE
			  SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`

	now := s.clock.Now().UTC()
	expiresAt := farFuture
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}
	if _, err := s.db.Exec(ctx, query, key, value, expiresAt, now); err != nil {
		err = fmt.Errorf("could not store state %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *PostgresStorage) Clear(ctx context.Context, key string) error {
	query := `DELETE FROM favorites_state WHERE state_key = $1`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		err = fmt.Errorf("could not delete state %s: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

// DeleteExpired removes rows past their retention and returns how many were deleted.
func (s *PostgresStorage) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM favorites_state WHERE expires_at <= $1`

	tag, err := s.db.Exec(ctx, query, s.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("could not delete expired state: %w", err)
	}
	return tag.RowsAffected(), nil
}
