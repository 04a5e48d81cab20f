package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// qrSize lado en píxeles del QR de aprovisionamiento.
const qrSize = 256

// TotpUseCase segundo factor de las credenciales del centro.
type TotpUseCase struct {
	api ports.TotpAPI
	qr  ports.QRGenerator
}

// NewTotpUseCase construye el caso de uso.
func NewTotpUseCase(api ports.TotpAPI, qr ports.QRGenerator) *TotpUseCase {
	return &TotpUseCase{api: api, qr: qr}
}

// Status estado del segundo factor.
func (uc *TotpUseCase) Status(ctx context.Context, centerID int64) (*entity.TotpStatus, error) {
	if centerID <= 0 {
		return nil, fmt.Errorf("%w: centerId", domain.ErrInvalidInput)
	}
	return uc.api.TotpStatus(ctx, centerID)
}

// Setup pide un secreto nuevo y devuelve además el QR de la URL otpauth en PNG base64.
func (uc *TotpUseCase) Setup(ctx context.Context, centerID int64) (*dto.TotpSetupResponse, error) {
	if centerID <= 0 {
		return nil, fmt.Errorf("%w: centerId", domain.ErrInvalidInput)
	}
	setup, err := uc.api.TotpSetup(ctx, centerID)
	if err != nil {
		return nil, err
	}
	res := &dto.TotpSetupResponse{Secret: setup.Secret, OtpAuthURL: setup.OtpAuthURL}
	if setup.OtpAuthURL != "" && uc.qr != nil {
		png, err := uc.qr.PNG(setup.OtpAuthURL, qrSize)
		if err != nil {
			return nil, fmt.Errorf("totp: generar QR: %w", err)
		}
		res.QRCodePNG = base64.StdEncoding.EncodeToString(png)
	}
	return res, nil
}

// Enable activa el segundo factor con el primer código válido.
func (uc *TotpUseCase) Enable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.TotpEnable(ctx, in)
}

// Disable desactiva el segundo factor.
func (uc *TotpUseCase) Disable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.api.TotpDisable(ctx, in)
}

// Verify comprueba un código.
func (uc *TotpUseCase) Verify(ctx context.Context, in dto.TotpCodeRequest) (*dto.TotpVerifyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	ok, err := uc.api.TotpVerify(ctx, in)
	if err != nil {
		return nil, err
	}
	return &dto.TotpVerifyResponse{Valid: ok}, nil
}
