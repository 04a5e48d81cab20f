// Package listing envuelve la carga de un listado paginado: llama al endpoint con los filtros,
// extrae el arreglo y la paginación y expone el estado de carga y error.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// ErrSuperseded la carga fue reemplazada por una más reciente y su resultado se descartó.
var ErrSuperseded = errors.New("carga reemplazada por una más reciente")

// Page página tipada.
type Page[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
}

// FetchFunc trae una página con los parámetros dados.
type FetchFunc[T any] func(ctx context.Context, params map[string]string) (*Page[T], error)

// Snapshot estado visible del contenedor.
type Snapshot[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	Loading       bool
	Err           error
	Generation    uint64
}

// Options callbacks opcionales. OnError recibe cada fallo exactamente una vez;
// si es nil el fallo se registra en el log.
type Options[T any] struct {
	OnError   func(err error)
	OnSuccess func(items []T)
	Logger    *logger.Logger
}

// Container sin reintentos ni caché. Cada Fetch toma una generación nueva y cancela la anterior;
// solo la generación más reciente escribe el estado.
type Container[T any] struct {
	mu     sync.Mutex
	fetch  FetchFunc[T]
	opts   Options[T]
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot[T]
}

// New crea el contenedor.
func New[T any](fetch FetchFunc[T], opts Options[T]) *Container[T] {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Container[T]{fetch: fetch, opts: opts, snap: Snapshot[T]{Items: []T{}}}
}

// Snapshot devuelve una copia del estado actual.
func (c *Container[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySnap()
}

func (c *Container[T]) copySnap() Snapshot[T] {
	s := c.snap
	s.Items = append([]T(nil), c.snap.Items...)
	if s.Items == nil {
		s.Items = []T{}
	}
	return s
}

// Fetch carga una página. Si falla, el estado queda con Items vacío y total 0 y se notifica el error.
// Si otra carga empieza antes de que esta termine, devuelve ErrSuperseded sin tocar el estado.
func (c *Container[T]) Fetch(ctx context.Context, params map[string]string) (Snapshot[T], error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.snap.Loading = true
	c.mu.Unlock()
	defer cancel()

	page, err := c.safeFetch(fctx, params)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return Snapshot[T]{Items: []T{}, Generation: gen}, ErrSuperseded
	}
	c.cancel = nil
	if err != nil {
		c.snap = Snapshot[T]{Items: []T{}, Err: err, Generation: gen}
		snap := c.copySnap()
		c.mu.Unlock()
		c.notify(err)
		return snap, err
	}
	if page == nil {
		page = &Page[T]{}
	}
	items := page.Items
	if items == nil {
		items = []T{}
	}
	c.snap = Snapshot[T]{
		Items:         items,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Generation:    gen,
	}
	snap := c.copySnap()
	c.mu.Unlock()

	if c.opts.OnSuccess != nil {
		c.opts.OnSuccess(snap.Items)
	}
	return snap, nil
}

// safeFetch convierte un panic del fetch en error para que el contenedor nunca propague uno.
func (c *Container[T]) safeFetch(ctx context.Context, params map[string]string) (page *Page[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listing: panic en fetch: %v", r)
		}
	}()
	return c.fetch(ctx, params)
}

func (c *Container[T]) notify(err error) {
	if c.opts.OnError != nil {
		c.opts.OnError(err)
		return
	}
	c.opts.Logger.Error().Err(err).Msg("error al cargar listado")
}

// Decode convierte una página cruda del API en una página tipada.
func Decode[T any](raw *ports.RawPage) (*Page[T], error) {
	if raw == nil {
		return &Page[T]{Items: []T{}}, nil
	}
	items := make([]T, 0, len(raw.Items))
	for i, msg := range raw.Items {
		var item T
		if err := json.Unmarshal(msg, &item); err != nil {
			return nil, fmt.Errorf("listing: decodificar elemento %d: %w", i, err)
		}
		items = append(items, item)
	}
	return &Page[T]{Items: items, TotalElements: raw.TotalElements, TotalPages: raw.TotalPages}, nil
}

// FromList adapta ports.ListAPI a un FetchFunc tipado sobre path/field.
// extra se evalúa en cada carga y se mezcla con los parámetros de búsqueda.
func FromList[T any](api ports.ListAPI, path, field string, extra func(ctx context.Context) map[string]string) FetchFunc[T] {
	return func(ctx context.Context, params map[string]string) (*Page[T], error) {
		q := ports.Query{}
		for k, v := range params {
			q[k] = v
		}
		if extra != nil {
			for k, v := range extra(ctx) {
				if v != "" {
					q[k] = v
				}
			}
		}
		raw, err := api.List(ctx, path, field, q)
		if err != nil {
			return nil, err
		}
		return Decode[T](raw)
	}
}
