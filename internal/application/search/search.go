// Package search contiene el estado de búsqueda y paginación que comparten todas las páginas de listado:
// pestaña de fechas, condición (radio), palabra clave y página/tamaño cero-basados.
package search

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/settlement-admin/internal/domain"
)

// DateLayout formato de las fechas de búsqueda (el de <input type="date">).
const DateLayout = "2006-01-02"

// DefaultSize tamaño de página por defecto; MaxSize el tope aceptado.
const (
	DefaultSize = 10
	MaxSize     = 100
)

// Tab pestaña rápida de fechas.
type Tab string

const (
	TabToday        Tab = "당일"
	TabYesterday    Tab = "전일"
	TabThreeDaysAgo Tab = "3일전"
	TabLastMonth    Tab = "전월"
	TabThisMonth    Tab = "당월"
)

// Tabs en el orden en que se muestran.
var Tabs = []Tab{TabToday, TabYesterday, TabThreeDaysAgo, TabLastMonth, TabThisMonth}

// DateDefault valor inicial (y de Reset) de las fechas.
type DateDefault int

const (
	// DatesEmpty fechas vacías y sin pestaña: sin límites.
	DatesEmpty DateDefault = iota
	// DatesCurrentMonth primer día del mes hasta hoy, pestaña 당월.
	DatesCurrentMonth
)

// Config define los valores por defecto de un formulario.
type Config struct {
	Conditions  []string
	DateDefault DateDefault
	Size        int
	Now         func() time.Time
}

// State instantánea del formulario. Tab vacío = ninguna pestaña seleccionada.
type State struct {
	Tab       Tab
	StartDate string
	EndDate   string
	Condition string
	Keyword   string
	Page      int
	Size      int
}

// Params construye los parámetros de consulta; las fechas vacías se omiten.
func (s State) Params() map[string]string {
	p := map[string]string{
		"page": strconv.Itoa(s.Page),
		"size": strconv.Itoa(s.Size),
	}
	if s.StartDate != "" {
		p["startDate"] = s.StartDate
	}
	if s.EndDate != "" {
		p["endDate"] = s.EndDate
	}
	if s.Condition != "" && s.Keyword != "" {
		p["searchType"] = s.Condition
		p["keyword"] = s.Keyword
	}
	return p
}

// TabRange calcula el rango de fechas de una pestaña respecto de now.
func TabRange(tab Tab, now time.Time) (start, end string, ok bool) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	firstOfMonth := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	switch tab {
	case TabToday:
		return today.Format(DateLayout), today.Format(DateLayout), true
	case TabYesterday:
		yd := today.AddDate(0, 0, -1)
		return yd.Format(DateLayout), yd.Format(DateLayout), true
	case TabThreeDaysAgo:
		return today.AddDate(0, 0, -3).Format(DateLayout), today.Format(DateLayout), true
	case TabLastMonth:
		first := firstOfMonth.AddDate(0, -1, 0)
		last := firstOfMonth.AddDate(0, 0, -1)
		return first.Format(DateLayout), last.Format(DateLayout), true
	case TabThisMonth:
		return firstOfMonth.Format(DateLayout), today.Format(DateLayout), true
	default:
		return "", "", false
	}
}

// Container estado de búsqueda de una página. Cada operación es una sola actualización atómica.
type Container struct {
	mu    sync.Mutex
	cfg   Config
	state State
}

// New crea el contenedor con los valores por defecto de cfg.
func New(cfg Config) *Container {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Size > MaxSize {
		cfg.Size = MaxSize
	}
	c := &Container{cfg: cfg}
	c.state = c.defaults(cfg.Size)
	return c
}

func (c *Container) defaults(size int) State {
	s := State{Size: size}
	if len(c.cfg.Conditions) > 0 {
		s.Condition = c.cfg.Conditions[0]
	}
	if c.cfg.DateDefault == DatesCurrentMonth {
		s.Tab = TabThisMonth
		s.StartDate, s.EndDate, _ = TabRange(TabThisMonth, c.cfg.Now())
	}
	return s
}

// Conditions condiciones de búsqueda ofrecidas.
func (c *Container) Conditions() []string {
	out := make([]string, len(c.cfg.Conditions))
	copy(out, c.cfg.Conditions)
	return out
}

// State devuelve una copia del estado actual.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectTab sobrescribe inicio y fin a la vez.
func (c *Container) SelectTab(tab Tab) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	start, end, ok := TabRange(tab, c.cfg.Now())
	if !ok {
		return c.state, fmt.Errorf("%w: pestaña de fecha %q", domain.ErrInvalidInput, tab)
	}
	c.state.Tab, c.state.StartDate, c.state.EndDate = tab, start, end
	return c.state, nil
}

// SetDates fija fechas a mano; la pestaña deja de estar seleccionada. No se valida el rango.
func (c *Container) SetDates(start, end string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Tab, c.state.StartDate, c.state.EndDate = "", start, end
	return c.state
}

// SetCondition selecciona una condición de las configuradas.
func (c *Container) SetCondition(cond string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, known := range c.cfg.Conditions {
		if known == cond {
			c.state.Condition = cond
			return c.state, nil
		}
	}
	return c.state, fmt.Errorf("%w: condición de búsqueda %q", domain.ErrInvalidInput, cond)
}

// SetKeyword fija la palabra clave.
func (c *Container) SetKeyword(keyword string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Keyword = keyword
	return c.state
}

// SetPage mueve la página actual (negativo → 0).
func (c *Container) SetPage(page int) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 0 {
		page = 0
	}
	c.state.Page = page
	return c.state
}

// SetSize cambia el tamaño de página y vuelve a la página 0 en la misma actualización.
func (c *Container) SetSize(size int) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	c.state.Size, c.state.Page = size, 0
	return c.state
}

// Search vuelve a la página 0; quien llama dispara la recarga.
func (c *Container) Search() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page = 0
	return c.state
}

// Reset restaura los valores por defecto configurados y la página 0. Conserva el tamaño de página.
func (c *Container) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.defaults(c.state.Size)
	return c.state
}
