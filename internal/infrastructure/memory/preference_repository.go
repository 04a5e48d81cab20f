// Package memory almacén de preferencias en proceso, usado cuando no hay base de datos configurada.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo guarda copias; los llamadores nunca comparten el puntero almacenado.
type PreferenceRepo struct {
	mu    sync.RWMutex
	prefs map[string]entity.Preference
	now   func() time.Time
}

func NewPreferenceRepository() *PreferenceRepo {
	return &PreferenceRepo{prefs: make(map[string]entity.Preference), now: time.Now}
}

func (r *PreferenceRepo) Get(_ context.Context, loginID string) (*entity.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prefs[loginID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PreferenceRepo) Save(_ context.Context, pref *entity.Preference) error {
	if pref == nil || pref.LoginID == "" {
		return nil
	}
	p := *pref
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = r.now()
	}
	r.mu.Lock()
	r.prefs[p.LoginID] = p
	r.mu.Unlock()
	return nil
}
