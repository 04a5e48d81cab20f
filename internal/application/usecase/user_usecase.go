package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
)

// UserUseCase utilidades de cuentas de acceso.
type UserUseCase struct {
	api ports.UserAPI
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(api ports.UserAPI) *UserUseCase {
	return &UserUseCase{api: api}
}

// CheckLoginID indica si el loginId ya está en uso.
func (uc *UserUseCase) CheckLoginID(ctx context.Context, loginID string) (bool, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return false, fmt.Errorf("%w: loginId", domain.ErrInvalidInput)
	}
	return uc.api.CheckLoginIDDuplicate(ctx, loginID)
}
