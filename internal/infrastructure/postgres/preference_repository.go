package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

const preferenceSchema = `
	CREATE TABLE IF NOT EXISTS admin_preferences (
		login_id          VARCHAR(100) PRIMARY KEY,
		center_id         BIGINT       NOT NULL DEFAULT 0,
		payment_purpose   VARCHAR(30)  NOT NULL DEFAULT '',
		sidebar_collapsed BOOLEAN      NOT NULL DEFAULT FALSE,
		theme             VARCHAR(10)  NOT NULL DEFAULT 'light',
		updated_at        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`

// PreferenceRepo preferencias de UI sobre PostgreSQL (tabla admin_preferences).
type PreferenceRepo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPreferenceRepository construye el adaptador.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool, now: time.Now}
}

// Migrate crea la tabla si no existe.
func (r *PreferenceRepo) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, preferenceSchema); err != nil {
		return fmt.Errorf("migrate admin_preferences: %w", err)
	}
	return nil
}

// Get devuelve las preferencias del usuario o (nil, nil) si no existen.
func (r *PreferenceRepo) Get(ctx context.Context, loginID string) (*entity.Preference, error) {
	query := `
		SELECT login_id, center_id, payment_purpose, sidebar_collapsed, theme, updated_at
		FROM admin_preferences WHERE login_id = $1`
	var p entity.Preference
	err := r.pool.QueryRow(ctx, query, loginID).Scan(
		&p.LoginID, &p.CenterID, &p.PaymentPurpose, &p.SidebarCollapsed, &p.Theme, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return &p, nil
}

// Save inserta o actualiza (upsert por login_id).
func (r *PreferenceRepo) Save(ctx context.Context, pref *entity.Preference) error {
	if pref == nil || pref.LoginID == "" {
		return fmt.Errorf("save preference: loginId vacío")
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = r.now()
	}
	query := `
		INSERT INTO admin_preferences (login_id, center_id, payment_purpose, sidebar_collapsed, theme, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (login_id) DO UPDATE SET
			center_id = EXCLUDED.center_id,
			payment_purpose = EXCLUDED.payment_purpose,
			sidebar_collapsed = EXCLUDED.sidebar_collapsed,
			theme = EXCLUDED.theme,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		pref.LoginID, pref.CenterID, pref.PaymentPurpose, pref.SidebarCollapsed, pref.Theme, pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
