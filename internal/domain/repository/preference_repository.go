package repository

import (
	"context"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// PreferenceRepository persiste las preferencias de UI por usuario (DIP).
// Get devuelve (nil, nil) si el usuario aún no tiene preferencias.
type PreferenceRepository interface {
	Get(ctx context.Context, loginID string) (*entity.Preference, error)
	Save(ctx context.Context, pref *entity.Preference) error
}
