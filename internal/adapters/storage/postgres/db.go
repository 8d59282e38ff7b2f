package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id       TEXT PRIMARY KEY,
	pet_id   TEXT NOT NULL,
	pet_name TEXT NOT NULL,
	message  TEXT NOT NULL,
	sent_at  TIMESTAMPTZ NOT NULL,
	status   TEXT NOT NULL,
	type     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reminders_pet_id_sent_at_idx ON reminders (pet_id, sent_at DESC);
`

// EnsureSchema crea la tabla del log de recordatorios si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
