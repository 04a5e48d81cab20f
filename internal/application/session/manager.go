package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/view"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/repository"
	"github.com/jhoicas/settlement-admin/pkg/jwt"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// DefaultIdleTimeout inactividad tras la que se descarta un Workspace.
const DefaultIdleTimeout = 2 * time.Hour

const sweepInterval = time.Minute

// Workspace todo lo que vive mientras dura una sesión: su estado, sus vistas y
// el tablero de edición de comisiones. Pertenece a un único token.
type Workspace struct {
	Token   string
	LoginID string
	Store   *Store
	Views   *view.Set
	Board   *commission.Board

	expiresAt time.Time
	lastSeen  time.Time
}

// Manager guarda un Workspace por token emitido por el API remoto en el login.
// Los claims del token no se verifican aquí: solo el token exacto que abrió el
// Workspace puede volver a usarlo.
type Manager struct {
	mu        sync.Mutex
	byToken   map[string]*Workspace
	api       ports.ListAPI
	prefs     repository.PreferenceRepository
	log       *logger.Logger
	root      *logger.Logger
	now       func() time.Time
	pageSize  int
	idle      time.Duration
	lastSweep time.Time
}

// Option configura el Manager.
type Option func(*Manager)

// WithClock fija el reloj de las vistas y de la expiración (tests).
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// WithPageSize fija el tamaño de página inicial de las vistas.
func WithPageSize(size int) Option { return func(m *Manager) { m.pageSize = size } }

// WithIdleTimeout fija la inactividad máxima de un Workspace.
func WithIdleTimeout(d time.Duration) Option { return func(m *Manager) { m.idle = d } }

// NewManager crea el gestor. prefs puede ser nil.
func NewManager(api ports.ListAPI, prefs repository.PreferenceRepository, log *logger.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{
		byToken: map[string]*Workspace{},
		api:     api,
		prefs:   prefs,
		log:     log.Component("session"),
		root:    log,
		now:     time.Now,
		idle:    DefaultIdleTimeout,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Open crea el Workspace de un token recién emitido por el API remoto.
// Solo lo llama el login; un token que no pasó por aquí no tiene Workspace.
func (m *Manager) Open(ctx context.Context, token string, claims *jwt.Claims) (*Workspace, error) {
	if token == "" || claims == nil {
		return nil, fmt.Errorf("%w: token o claims vacíos", domain.ErrInvalidInput)
	}
	loginID := claims.LoginID
	if loginID == "" {
		loginID = claims.Subject
	}
	if loginID == "" {
		return nil, fmt.Errorf("%w: el token no identifica al usuario", domain.ErrInvalidInput)
	}

	ws := m.newWorkspace(token, loginID)
	if _, err := ws.Store.Login(ctx, token, claims); err != nil {
		return nil, err
	}
	if claims.ExpiresAt != nil {
		ws.expiresAt = claims.ExpiresAt.Time
	}

	now := m.now()
	m.mu.Lock()
	if prev, ok := m.byToken[token]; ok {
		m.mu.Unlock()
		return prev, nil
	}
	ws.lastSeen = now
	m.byToken[token] = ws
	stale := m.sweepLocked(now)
	m.mu.Unlock()

	m.closeAll(stale, "workspace descartado por inactividad")
	m.log.Info().Str("login_id", loginID).Msg("workspace creado")
	return ws, nil
}

// Lookup devuelve el Workspace abierto con exactamente este token.
// Un token desconocido, vencido o inactivo devuelve domain.ErrSessionExpired.
func (m *Manager) Lookup(token string) (*Workspace, error) {
	now := m.now()
	m.mu.Lock()
	stale := m.sweepLocked(now)
	ws, ok := m.byToken[token]
	if ok && m.expired(ws, now) {
		delete(m.byToken, token)
		stale = append(stale, ws)
		ok = false
	}
	if ok {
		ws.lastSeen = now
	}
	m.mu.Unlock()

	m.closeAll(stale, "workspace vencido")
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	return ws, nil
}

func (m *Manager) newWorkspace(token, loginID string) *Workspace {
	store := NewStore(m.prefs, m.log)
	board := commission.NewBoard()
	views := view.NewSet(m.api, view.Options{
		Filters: func(context.Context) map[string]string { return store.Filters() },
		Board:   board,
		Now:     m.now,
		Size:    m.pageSize,
		Logger:  m.root,
	})
	return &Workspace{Token: token, LoginID: loginID, Store: store, Views: views, Board: board}
}

func (m *Manager) expired(ws *Workspace, now time.Time) bool {
	if !ws.expiresAt.IsZero() && !now.Before(ws.expiresAt) {
		return true
	}
	return m.idle > 0 && now.Sub(ws.lastSeen) > m.idle
}

// sweepLocked retira los Workspaces vencidos como mucho una vez por sweepInterval.
// Requiere m.mu; los retirados se cierran fuera del lock.
func (m *Manager) sweepLocked(now time.Time) []*Workspace {
	if now.Sub(m.lastSweep) < sweepInterval {
		return nil
	}
	m.lastSweep = now
	var stale []*Workspace
	for tok, ws := range m.byToken {
		if m.expired(ws, now) {
			delete(m.byToken, tok)
			stale = append(stale, ws)
		}
	}
	return stale
}

func (m *Manager) closeAll(list []*Workspace, msg string) {
	for _, ws := range list {
		ws.Store.Logout()
		m.log.Info().Str("login_id", ws.LoginID).Msg(msg)
	}
}

// Close destruye el Workspace del token (logout).
func (m *Manager) Close(token string) {
	m.mu.Lock()
	ws, ok := m.byToken[token]
	delete(m.byToken, token)
	m.mu.Unlock()
	if ok {
		ws.Store.Logout()
		m.log.Info().Str("login_id", ws.LoginID).Msg("workspace cerrado")
	}
}

// Expire destruye el Workspace de un token rechazado por el API remoto (401) o vencido.
// Solo afecta a ese token; otras sesiones del mismo usuario siguen abiertas.
func (m *Manager) Expire(token string) {
	m.mu.Lock()
	ws, ok := m.byToken[token]
	m.mu.Unlock()
	if !ok {
		return
	}
	m.log.Warn().Str("login_id", ws.LoginID).Msg("sesión expirada")
	m.Close(token)
}

// Count número de workspaces activos.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byToken)
}
