package repository

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/entity"
)

// Fixed keys of the two persisted scalars.
const (
	streakCountKey      = "streak_count"
	lastVerifiedDateKey = "last_verified_date"
)

const createAppStateTable = `CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// StreakStore keeps the streak engine's two scalars in a key/value table
// scoped to this deployment instance.
type StreakStore struct {
	conn PgConnection
}

func NewStreakStore(cfg DBConfig) *StreakStore {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streakStore error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streakStore: " + err.Error())
	}
	if _, err = pool.Exec(context.Background(), createAppStateTable); err != nil {
		log.Fatal("error ensuring app_state table: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreakStore{
		conn: pool,
	}
}

func NewStreakStoreWithConn(conn PgConnection) *StreakStore {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streakStore: " + err.Error())
	}
	return &StreakStore{
		conn: conn,
	}
}

func (store *StreakStore) Load(ctx context.Context) (*entity.StreakState, error) {
	rows, err := store.conn.Query(
		ctx,
		`SELECT key, value FROM app_state WHERE key IN ($1, $2);`,
		streakCountKey,
		lastVerifiedDateKey,
	)
	if err != nil {
		return nil, errors.New("loading streak state error: " + err.Error())
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, errors.New("streak state row parsing error: " + err.Error())
		}
		values[key] = value
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak state rows error: " + rows.Err().Error())
	}

	// Missing keys mean first run: zero count, no verified date yet.
	state := entity.StreakState{}
	if raw, ok := values[streakCountKey]; ok {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("persisted streak count is not an integer: " + err.Error())
		}
		state.Count = count
	}
	if raw, ok := values[lastVerifiedDateKey]; ok && raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			return nil, errors.New("persisted last verified date is invalid: " + err.Error())
		}
		state.LastVerified = &date
	}
	return &state, nil
}

func (store *StreakStore) Save(ctx context.Context, state *entity.StreakState) error {
	lastVerified := ""
	if state.LastVerified != nil {
		lastVerified = state.LastVerified.String()
	}

	tx, err := store.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening streak state transaction error: " + err.Error())
	}

	upsert := `INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`
	if _, err = tx.Exec(ctx, upsert, streakCountKey, strconv.Itoa(state.Count)); err != nil {
		tx.Rollback(ctx)
		return errors.New("saving streak count error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, upsert, lastVerifiedDateKey, lastVerified); err != nil {
		tx.Rollback(ctx)
		return errors.New("saving last verified date error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing streak state error: " + err.Error())
	}
	return nil
}
