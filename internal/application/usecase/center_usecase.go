package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// CenterUseCase configuración de centros (tenant / PG).
type CenterUseCase struct {
	api ports.CenterAPI
}

// NewCenterUseCase construye el caso de uso.
func NewCenterUseCase(api ports.CenterAPI) *CenterUseCase {
	return &CenterUseCase{api: api}
}

// List todos los centros visibles para el usuario.
func (uc *CenterUseCase) List(ctx context.Context) ([]entity.Center, error) {
	list, err := uc.api.Centers(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.Center{}
	}
	return list, nil
}

// Detail detalle del centro indicado.
func (uc *CenterUseCase) Detail(ctx context.Context, centerID int64) (*entity.Center, error) {
	if centerID <= 0 {
		return nil, fmt.Errorf("%w: centerId", domain.ErrInvalidInput)
	}
	return uc.api.CenterDetail(ctx, centerID)
}

// Create registra un centro.
func (uc *CenterUseCase) Create(ctx context.Context, in dto.CenterRequest) (*entity.Center, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.CreateCenter(ctx, in)
}

// Update edita un centro. Credenciales vacías se conservan en el servidor.
func (uc *CenterUseCase) Update(ctx context.Context, id int64, in dto.CenterRequest) (*entity.Center, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.UpdateCenter(ctx, id, in)
}
