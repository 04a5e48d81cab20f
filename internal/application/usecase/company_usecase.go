package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// CompanyUseCase alta, consulta y edición de organizaciones. No hay borrado.
type CompanyUseCase struct {
	api   ports.CompanyAPI
	users ports.UserAPI
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(api ports.CompanyAPI, users ports.UserAPI) *CompanyUseCase {
	return &CompanyUseCase{api: api, users: users}
}

// Get obtiene una organización por ID.
func (uc *CompanyUseCase) Get(ctx context.Context, id int64) (*entity.Company, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.GetCompany(ctx, id)
}

// Create registra una organización. Si trae loginId, comprueba antes que no exista.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CompanyRequest) (*entity.Company, error) {
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	if in.LoginID != "" {
		dup, err := uc.users.CheckLoginIDDuplicate(ctx, in.LoginID)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, fmt.Errorf("%w: loginId %s", domain.ErrDuplicate, in.LoginID)
		}
	}
	return uc.api.CreateCompany(ctx, in)
}

// Update edita una organización existente.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.CompanyRequest) (*entity.Company, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	return uc.api.UpdateCompany(ctx, id, in)
}

// validateCompany: distribuidores y agentes cuelgan siempre de una organización padre.
func validateCompany(in dto.CompanyRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Level > entity.LevelBranch && in.ParentID == nil {
		return fmt.Errorf("%w: parentId es obligatorio para %s", domain.ErrInvalidInput, entity.LevelName(in.Level))
	}
	return nil
}
