package postgres

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"kizuna-dashboard/internal/domain/reminders"
)

// RemindersRepo guarda el log de recordatorios enviados. La versión es del proceso:
// sirve para invalidar estadísticas, no para sincronizar réplicas.
type RemindersRepo struct {
	db      *sql.DB
	version atomic.Uint64
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Prepend(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (
			id, pet_id, pet_name,
			message, sent_at,
			status, type
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rem.ID,
		rem.PetID,
		rem.PetName,
		rem.Message,
		rem.SentAt,
		string(rem.Status),
		string(rem.Type),
	)
	if err != nil {
		return err
	}
	r.version.Add(1)
	return nil
}

func (r *RemindersRepo) List(ctx context.Context) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, pet_name, message, sent_at, status, type
		FROM reminders
		ORDER BY sent_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

func (r *RemindersRepo) ListByPet(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []reminders.Reminder{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, pet_name, message, sent_at, status, type
		FROM reminders
		WHERE pet_id = $1
		ORDER BY sent_at DESC, id DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

func (r *RemindersRepo) Version() uint64 {
	return r.version.Load()
}

func scanReminders(rows *sql.Rows) ([]reminders.Reminder, error) {
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		var (
			rem          reminders.Reminder
			status, kind string
		)
		if err := rows.Scan(
			&rem.ID,
			&rem.PetID,
			&rem.PetName,
			&rem.Message,
			&rem.SentAt,
			&status,
			&kind,
		); err != nil {
			return nil, err
		}
		rem.Status = reminders.Status(status)
		rem.Type = reminders.Type(kind)
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
