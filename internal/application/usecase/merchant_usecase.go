package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// MerchantUseCase CRUD de comercios.
type MerchantUseCase struct {
	api ports.MerchantAPI
}

// NewMerchantUseCase construye el caso de uso.
func NewMerchantUseCase(api ports.MerchantAPI) *MerchantUseCase {
	return &MerchantUseCase{api: api}
}

// Get obtiene un comercio.
func (uc *MerchantUseCase) Get(ctx context.Context, id int64) (*entity.Merchant, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.GetMerchant(ctx, id)
}

// Create registra un comercio.
func (uc *MerchantUseCase) Create(ctx context.Context, in dto.MerchantRequest) (*entity.Merchant, error) {
	if err := validateMerchant(in); err != nil {
		return nil, err
	}
	return uc.api.CreateMerchant(ctx, in)
}

// Update edita un comercio.
func (uc *MerchantUseCase) Update(ctx context.Context, id int64, in dto.MerchantRequest) (*entity.Merchant, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	if err := validateMerchant(in); err != nil {
		return nil, err
	}
	return uc.api.UpdateMerchant(ctx, id, in)
}

// Delete elimina un comercio.
func (uc *MerchantUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	return uc.api.DeleteMerchant(ctx, id)
}

// validateMerchant: comisiones con dos decimales como máximo y límites escalonados.
func validateMerchant(in dto.MerchantRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	rates := []struct {
		name string
		v    decimal.Decimal
	}{
		{"deliveryFeeCommission", in.DeliveryFeeCommission},
		{"monthlyRentCommission", in.MonthlyRentCommission},
	}
	for _, r := range rates {
		if !commission.ValidInput(r.v.String()) {
			return fmt.Errorf("%w: %s=%s admite dos decimales", domain.ErrInvalidInput, r.name, r.v)
		}
	}
	if in.DailyLimit.IsPositive() && in.PerTransactionLimit.GreaterThan(in.DailyLimit) {
		return fmt.Errorf("%w: perTransactionLimit supera dailyLimit", domain.ErrInvalidInput)
	}
	if in.MonthlyLimit.IsPositive() && in.DailyLimit.GreaterThan(in.MonthlyLimit) {
		return fmt.Errorf("%w: dailyLimit supera monthlyLimit", domain.ErrInvalidInput)
	}
	return nil
}
