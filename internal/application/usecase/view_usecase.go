package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/listing"
	"github.com/jhoicas/settlement-admin/internal/application/search"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/view"
	"github.com/jhoicas/settlement-admin/internal/domain"
)

// ViewUseCase operaciones del formulario de búsqueda de cada listado.
// Cambiar pestaña, fechas, condición o palabra clave solo actualiza el estado;
// buscar, paginar, cambiar el tamaño y reiniciar recargan la lista.
type ViewUseCase struct{}

// NewViewUseCase construye el caso de uso.
func NewViewUseCase() *ViewUseCase { return &ViewUseCase{} }

// Current estado de búsqueda y última página cargada.
func (uc *ViewUseCase) Current(ws *session.Workspace, name string) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	return toViewResponse(v, v.Current()), nil
}

// Load recarga la vista con el estado actual.
func (uc *ViewUseCase) Load(ctx context.Context, ws *session.Workspace, name string) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	return uc.reload(ctx, v)
}

// SelectTab fija inicio y fin según la pestaña.
func (uc *ViewUseCase) SelectTab(ws *session.Workspace, name string, in dto.DateTabRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if _, err := v.Search().SelectTab(search.Tab(in.Tab)); err != nil {
		return nil, err
	}
	return toViewResponse(v, v.Current()), nil
}

// SetDates fija fechas explícitas.
func (uc *ViewUseCase) SetDates(ws *session.Workspace, name string, in dto.DatesRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	v.Search().SetDates(in.StartDate, in.EndDate)
	return toViewResponse(v, v.Current()), nil
}

// SetCondition selecciona la condición de búsqueda.
func (uc *ViewUseCase) SetCondition(ws *session.Workspace, name string, in dto.ConditionRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if _, err := v.Search().SetCondition(in.Condition); err != nil {
		return nil, err
	}
	return toViewResponse(v, v.Current()), nil
}

// SetKeyword fija la palabra clave.
func (uc *ViewUseCase) SetKeyword(ws *session.Workspace, name string, in dto.KeywordRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	v.Search().SetKeyword(in.Keyword)
	return toViewResponse(v, v.Current()), nil
}

// SetPage cambia de página y recarga.
func (uc *ViewUseCase) SetPage(ctx context.Context, ws *session.Workspace, name string, in dto.PageRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	v.Search().SetPage(in.Page)
	return uc.reload(ctx, v)
}

// SetSize cambia el tamaño de página (vuelve a la página 0) y recarga.
func (uc *ViewUseCase) SetSize(ctx context.Context, ws *session.Workspace, name string, in dto.SizeRequest) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	v.Search().SetSize(in.Size)
	return uc.reload(ctx, v)
}

// Search vuelve a la página 0 y recarga.
func (uc *ViewUseCase) Search(ctx context.Context, ws *session.Workspace, name string) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	v.Search().Search()
	return uc.reload(ctx, v)
}

// Reset restaura los valores por defecto y recarga.
func (uc *ViewUseCase) Reset(ctx context.Context, ws *session.Workspace, name string) (*dto.ViewResponse, error) {
	v, err := ws.Views.Get(name)
	if err != nil {
		return nil, err
	}
	v.Search().Reset()
	return uc.reload(ctx, v)
}

// reload: un fallo de carga deja la lista vacía y se informa en lastError, no como error de la petición.
// Solo una carga reemplazada o una sesión expirada se devuelven como error.
func (uc *ViewUseCase) reload(ctx context.Context, v view.View) (*dto.ViewResponse, error) {
	res, err := v.Reload(ctx)
	if errors.Is(err, listing.ErrSuperseded) || errors.Is(err, domain.ErrSessionExpired) {
		return nil, err
	}
	return toViewResponse(v, res), nil
}

func toViewResponse(v view.View, res view.Result) *dto.ViewResponse {
	st := v.Search().State()
	out := &dto.ViewResponse{
		View: v.Name(),
		Search: dto.SearchState{
			Tab:        string(st.Tab),
			StartDate:  st.StartDate,
			EndDate:    st.EndDate,
			Condition:  st.Condition,
			Conditions: v.Search().Conditions(),
			Keyword:    st.Keyword,
			Page:       st.Page,
			Size:       st.Size,
		},
		Items:   res.Items,
		Total:   res.TotalElements,
		Pages:   res.TotalPages,
		Loading: res.Loading,
	}
	if out.Items == nil {
		out.Items = []interface{}{}
	}
	if res.Err != nil {
		out.LastError = res.Err.Error()
	}
	return out
}
