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

// PaymentUseCase operaciones sobre transacciones ya procesadas.
type PaymentUseCase struct {
	api ports.PaymentAPI
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(api ports.PaymentAPI) *PaymentUseCase {
	return &PaymentUseCase{api: api}
}

// Cancel cancela total o parcialmente una transacción.
func (uc *PaymentUseCase) Cancel(ctx context.Context, id int64, in dto.CancelPaymentRequest) (*entity.Payment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.CancelPayment(ctx, id, in)
}

// RegisterTerminal vincula el terminal de una transacción no registrada a un comercio.
func (uc *PaymentUseCase) RegisterTerminal(ctx context.Context, id int64, in dto.RegisterTerminalRequest) (*entity.Payment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	in.TerminalCode = strings.TrimSpace(in.TerminalCode)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.RegisterTerminal(ctx, id, in)
}

// Receipt comprobante de una transacción.
func (uc *PaymentUseCase) Receipt(ctx context.Context, id int64) (*entity.Receipt, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.Receipt(ctx, id)
}
