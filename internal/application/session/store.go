// Package session es el contenedor explícito del estado de aplicación de cada usuario:
// token y claims decodificados, centro y propósito de pago activos y preferencias de UI.
// Solo cambia por sus puntos de entrada (Login, Logout, SwitchCenter, SetPaymentPurpose,
// ToggleSidebar, ToggleTheme).
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/repository"
	"github.com/jhoicas/settlement-admin/pkg/jwt"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// State instantánea del estado de sesión. Los claims son solo de presentación.
type State struct {
	Token            string
	Claims           jwt.Claims
	CenterID         int64
	PaymentPurpose   string
	SidebarCollapsed bool
	Theme            string
}

// LoginID identificador del usuario según los claims.
func (s State) LoginID() string {
	if s.Claims.LoginID != "" {
		return s.Claims.LoginID
	}
	return s.Claims.Subject
}

// Store estado de sesión de un usuario.
type Store struct {
	mu       sync.RWMutex
	state    State
	loggedIn bool
	prefs    repository.PreferenceRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewStore crea un store vacío. prefs puede ser nil (sin persistencia).
func NewStore(prefs repository.PreferenceRepository, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{prefs: prefs, log: log, now: time.Now}
}

// Login inicializa el estado con el token y sus claims y restaura las preferencias guardadas.
func (s *Store) Login(ctx context.Context, token string, claims *jwt.Claims) (State, error) {
	if token == "" || claims == nil {
		return State{}, fmt.Errorf("%w: token o claims vacíos", domain.ErrInvalidInput)
	}
	st := State{
		Token:          token,
		Claims:         *claims,
		CenterID:       claims.CenterID,
		PaymentPurpose: entity.PaymentPurposeDeliveryFee,
		Theme:          entity.ThemeLight,
	}
	if pref := s.loadPrefs(ctx, st.LoginID()); pref != nil {
		if pref.CenterID > 0 {
			st.CenterID = pref.CenterID
		}
		if validPurpose(pref.PaymentPurpose) {
			st.PaymentPurpose = pref.PaymentPurpose
		}
		if pref.Theme == entity.ThemeDark || pref.Theme == entity.ThemeLight {
			st.Theme = pref.Theme
		}
		st.SidebarCollapsed = pref.SidebarCollapsed
	}

	s.mu.Lock()
	s.state, s.loggedIn = st, true
	s.mu.Unlock()
	return st, nil
}

// Logout borra el estado. Las preferencias guardadas se conservan para el próximo login.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.loggedIn = State{}, false
}

// State devuelve el estado actual y si hay sesión.
func (s *Store) State() (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.loggedIn
}

// SwitchCenter cambia el centro activo.
func (s *Store) SwitchCenter(ctx context.Context, centerID int64) (State, error) {
	if centerID <= 0 {
		return State{}, fmt.Errorf("%w: centerId", domain.ErrInvalidInput)
	}
	return s.update(ctx, func(st *State) { st.CenterID = centerID })
}

// SetPaymentPurpose cambia el propósito de pago activo.
func (s *Store) SetPaymentPurpose(ctx context.Context, purpose string) (State, error) {
	if !validPurpose(purpose) {
		return State{}, fmt.Errorf("%w: paymentPurpose %q", domain.ErrInvalidInput, purpose)
	}
	return s.update(ctx, func(st *State) { st.PaymentPurpose = purpose })
}

// ToggleSidebar pliega o despliega la barra lateral.
func (s *Store) ToggleSidebar(ctx context.Context) (State, error) {
	return s.update(ctx, func(st *State) { st.SidebarCollapsed = !st.SidebarCollapsed })
}

// ToggleTheme alterna entre tema claro y oscuro.
func (s *Store) ToggleTheme(ctx context.Context) (State, error) {
	return s.update(ctx, func(st *State) {
		if st.Theme == entity.ThemeDark {
			st.Theme = entity.ThemeLight
		} else {
			st.Theme = entity.ThemeDark
		}
	})
}

// Filters filtros de sesión que acompañan a cada listado.
func (s *Store) Filters() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := map[string]string{}
	if s.state.CenterID > 0 {
		f["centerId"] = strconv.FormatInt(s.state.CenterID, 10)
	}
	if s.state.PaymentPurpose != "" {
		f["paymentPurpose"] = s.state.PaymentPurpose
	}
	return f
}

func (s *Store) update(ctx context.Context, fn func(st *State)) (State, error) {
	s.mu.Lock()
	if !s.loggedIn {
		s.mu.Unlock()
		return State{}, domain.ErrNoSession
	}
	fn(&s.state)
	st := s.state
	s.mu.Unlock()

	s.savePrefs(ctx, st)
	return st, nil
}

func (s *Store) loadPrefs(ctx context.Context, loginID string) *entity.Preference {
	if s.prefs == nil || loginID == "" {
		return nil
	}
	pref, err := s.prefs.Get(ctx, loginID)
	if err != nil {
		s.log.Warn().Err(err).Str("login_id", loginID).Msg("no se pudieron cargar preferencias")
		return nil
	}
	return pref
}

// savePrefs es best-effort: un fallo se registra y no se propaga.
func (s *Store) savePrefs(ctx context.Context, st State) {
	if s.prefs == nil || st.LoginID() == "" {
		return
	}
	pref := &entity.Preference{
		LoginID:          st.LoginID(),
		CenterID:         st.CenterID,
		PaymentPurpose:   st.PaymentPurpose,
		SidebarCollapsed: st.SidebarCollapsed,
		Theme:            st.Theme,
		UpdatedAt:        s.now().UTC(),
	}
	if err := s.prefs.Save(ctx, pref); err != nil {
		s.log.Warn().Err(err).Str("login_id", pref.LoginID).Msg("no se pudieron guardar preferencias")
	}
}

func validPurpose(p string) bool {
	return p == entity.PaymentPurposeDeliveryFee || p == entity.PaymentPurposeMonthlyRent
}

// Response convierte el estado al DTO expuesto a la UI.
func Response(st State) dto.SessionResponse {
	r := dto.SessionResponse{
		LoginID:          st.LoginID(),
		Name:             st.Claims.Name,
		Level:            st.Claims.Level,
		LevelName:        entity.LevelName(st.Claims.Level),
		CompanyID:        st.Claims.CompanyID,
		CenterID:         st.CenterID,
		PaymentPurpose:   st.PaymentPurpose,
		SidebarCollapsed: st.SidebarCollapsed,
		Theme:            st.Theme,
	}
	if st.Claims.ExpiresAt != nil {
		r.ExpiresAt = st.Claims.ExpiresAt.Unix()
	}
	return r
}
