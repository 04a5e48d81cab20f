package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// TerminalUseCase CRUD de terminales. El código es único: se comprueba con check-duplicate antes de guardar.
type TerminalUseCase struct {
	api ports.TerminalAPI
}

// NewTerminalUseCase construye el caso de uso.
func NewTerminalUseCase(api ports.TerminalAPI) *TerminalUseCase {
	return &TerminalUseCase{api: api}
}

// Get obtiene un terminal.
func (uc *TerminalUseCase) Get(ctx context.Context, id int64) (*entity.Terminal, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.GetTerminal(ctx, id)
}

// CheckDuplicate indica si el código ya está registrado.
func (uc *TerminalUseCase) CheckDuplicate(ctx context.Context, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, fmt.Errorf("%w: terminalCode", domain.ErrInvalidInput)
	}
	return uc.api.CheckTerminalDuplicate(ctx, code)
}

// Create registra un terminal; devuelve domain.ErrDuplicate si el código ya existe.
func (uc *TerminalUseCase) Create(ctx context.Context, in dto.TerminalRequest) (*entity.Terminal, error) {
	in.TerminalCode = strings.TrimSpace(in.TerminalCode)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.ensureUnique(ctx, in.TerminalCode); err != nil {
		return nil, err
	}
	return uc.api.CreateTerminal(ctx, in)
}

// Update edita un terminal. Si cambia el código, se comprueba que el nuevo no exista.
func (uc *TerminalUseCase) Update(ctx context.Context, id int64, in dto.TerminalRequest) (*entity.Terminal, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	in.TerminalCode = strings.TrimSpace(in.TerminalCode)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	current, err := uc.api.GetTerminal(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil || current.TerminalCode != in.TerminalCode {
		if err := uc.ensureUnique(ctx, in.TerminalCode); err != nil {
			return nil, err
		}
	}
	return uc.api.UpdateTerminal(ctx, id, in)
}

// Delete elimina un terminal.
func (uc *TerminalUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.DeleteTerminal(ctx, id)
}

func (uc *TerminalUseCase) ensureUnique(ctx context.Context, code string) error {
	dup, err := uc.api.CheckTerminalDuplicate(ctx, code)
	if err != nil {
		return err
	}
	if dup {
		return fmt.Errorf("%w: terminalCode %s", domain.ErrDuplicate, code)
	}
	return nil
}
