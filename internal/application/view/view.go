// Package view une cada página de listado con su estado de búsqueda y su contenedor de carga.
package view

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/settlement-admin/internal/application/listing"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/search"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// Nombres de vistas expuestos en /api/views/:view.
const (
	Payments              = "payments"
	UnregisteredTerminals = "unregistered-terminals"
	Merchants             = "merchants"
	Companies             = "companies"
	Terminals             = "terminals"
	Commissions           = "commissions"
	SettlementPeriod      = "settlement-period"
	SettlementDaily       = "settlement-daily"
)

// Definition endpoint, campo del arreglo y formulario de una vista.
type Definition struct {
	Name        string
	Path        string
	Field       string
	Conditions  []string
	DateDefault search.DateDefault
}

// Definitions todas las vistas en orden de menú.
var Definitions = []Definition{
	{Payments, "/payments", "payments", []string{"merchantName", "approvalNumber", "terminalCode"}, search.DatesCurrentMonth},
	{UnregisteredTerminals, "/payments/unregistered-terminals", "payments", []string{"terminalCode", "approvalNumber"}, search.DatesCurrentMonth},
	{Merchants, "/merchants", "merchants", []string{"merchantName", "businessNumber", "representative"}, search.DatesEmpty},
	{Companies, "/companies", "companies", []string{"companyName", "businessNumber", "loginId"}, search.DatesEmpty},
	{Terminals, "/merchant-terminals", "terminals", []string{"terminalCode", "merchantName"}, search.DatesEmpty},
	{Commissions, "/merchant-commissions", "commissions", []string{"merchantName"}, search.DatesEmpty},
	{SettlementPeriod, "/settlements/merchants/period", "settlements", []string{"merchantName"}, search.DatesCurrentMonth},
	{SettlementDaily, "/settlements/merchants/daily", "settlements", []string{"merchantName"}, search.DatesCurrentMonth},
}

// Result página cargada sin tipo, lista para serializar.
type Result struct {
	Items         []interface{}
	TotalElements int64
	TotalPages    int
	Loading       bool
	Err           error
}

// View una página de listado.
type View interface {
	Name() string
	Search() *search.Container
	// Reload carga la página con el estado de búsqueda actual.
	Reload(ctx context.Context) (Result, error)
	Current() Result
}

type listView[T any] struct {
	def       Definition
	search    *search.Container
	container *listing.Container[T]
}

func (v *listView[T]) Name() string              { return v.def.Name }
func (v *listView[T]) Search() *search.Container { return v.search }

func (v *listView[T]) Reload(ctx context.Context) (Result, error) {
	snap, err := v.container.Fetch(ctx, v.search.State().Params())
	return toResult(snap), err
}

func (v *listView[T]) Current() Result {
	return toResult(v.container.Snapshot())
}

func toResult[T any](snap listing.Snapshot[T]) Result {
	items := make([]interface{}, len(snap.Items))
	for i := range snap.Items {
		items[i] = snap.Items[i]
	}
	return Result{
		Items:         items,
		TotalElements: snap.TotalElements,
		TotalPages:    snap.TotalPages,
		Loading:       snap.Loading,
		Err:           snap.Err,
	}
}

// Options dependencias comunes de las vistas de un usuario.
type Options struct {
	// Filters devuelve los filtros de sesión (centerId, paymentPurpose) en cada carga.
	Filters func(ctx context.Context) map[string]string
	// Board recibe cada página de comisiones cargada.
	Board   *commission.Board
	Now     func() time.Time
	Size    int
	Logger  *logger.Logger
	OnError func(view string, err error)
}

// Set vistas de un usuario.
type Set struct {
	views map[string]View
}

// NewSet construye todas las vistas sobre el API de listados.
func NewSet(api ports.ListAPI, opts Options) *Set {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &Set{views: make(map[string]View, len(Definitions))}
	for _, def := range Definitions {
		switch def.Name {
		case Payments, UnregisteredTerminals:
			s.views[def.Name] = newListView[entity.Payment](api, def, opts, nil)
		case Merchants:
			s.views[def.Name] = newListView[entity.Merchant](api, def, opts, nil)
		case Companies:
			s.views[def.Name] = newListView[entity.Company](api, def, opts, nil)
		case Terminals:
			s.views[def.Name] = newListView[entity.Terminal](api, def, opts, nil)
		case Commissions:
			var onSuccess func([]entity.Commission)
			if opts.Board != nil {
				onSuccess = opts.Board.Load
			}
			s.views[def.Name] = newListView[entity.Commission](api, def, opts, onSuccess)
		case SettlementPeriod, SettlementDaily:
			s.views[def.Name] = newListView[entity.MerchantSettlement](api, def, opts, nil)
		}
	}
	return s
}

func newListView[T any](api ports.ListAPI, def Definition, opts Options, onSuccess func([]T)) *listView[T] {
	log := opts.Logger.Component("view." + def.Name)
	var onError func(error)
	if opts.OnError != nil {
		name := def.Name
		onError = func(err error) { opts.OnError(name, err) }
	}
	return &listView[T]{
		def: def,
		search: search.New(search.Config{
			Conditions:  def.Conditions,
			DateDefault: def.DateDefault,
			Size:        opts.Size,
			Now:         opts.Now,
		}),
		container: listing.New(listing.FromList[T](api, def.Path, def.Field, opts.Filters), listing.Options[T]{
			OnError:   onError,
			OnSuccess: onSuccess,
			Logger:    log,
		}),
	}
}

// Get devuelve la vista por nombre.
func (s *Set) Get(name string) (View, error) {
	v, ok := s.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownView, name)
	}
	return v, nil
}
