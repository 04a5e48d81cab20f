// Package ports define los puertos de salida hacia el API REST remoto de liquidaciones.
// La aplicación solo conoce estos contratos; el adaptador resty vive en infrastructure/webadmin.
package ports

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// RawPage página de un listado: el arreglo extraído del campo pedido más metadatos.
type RawPage struct {
	Items         []json.RawMessage
	TotalElements int64
	TotalPages    int
}

// Query parámetros de consulta (page, size, startDate, endDate, searchType, keyword, centerId...).
type Query map[string]string

// ListAPI listados paginados genéricos.
type ListAPI interface {
	// List hace GET path y devuelve el arreglo del campo field con la paginación.
	List(ctx context.Context, path, field string, q Query) (*RawPage, error)
}

// AuthAPI establecimiento y cierre de sesión.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error)
	Logout(ctx context.Context) error
}

// CompanyAPI CRUD de organizaciones (sin borrado).
type CompanyAPI interface {
	GetCompany(ctx context.Context, id int64) (*entity.Company, error)
	CreateCompany(ctx context.Context, in dto.CompanyRequest) (*entity.Company, error)
	UpdateCompany(ctx context.Context, id int64, in dto.CompanyRequest) (*entity.Company, error)
}

// MerchantAPI CRUD de comercios.
type MerchantAPI interface {
	GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error)
	CreateMerchant(ctx context.Context, in dto.MerchantRequest) (*entity.Merchant, error)
	UpdateMerchant(ctx context.Context, id int64, in dto.MerchantRequest) (*entity.Merchant, error)
	DeleteMerchant(ctx context.Context, id int64) error
}

// CommissionAPI actualización de comisiones y su historial.
type CommissionAPI interface {
	UpdateCommission(ctx context.Context, id int64, in commission.Update) (*entity.Commission, error)
	CommissionHistories(ctx context.Context, id int64) ([]entity.CommissionHistory, error)
}

// PaymentAPI operaciones sobre transacciones.
type PaymentAPI interface {
	CancelPayment(ctx context.Context, id int64, in dto.CancelPaymentRequest) (*entity.Payment, error)
	RegisterTerminal(ctx context.Context, id int64, in dto.RegisterTerminalRequest) (*entity.Payment, error)
	Receipt(ctx context.Context, id int64) (*entity.Receipt, error)
}

// SettlementAPI reportes agregados.
type SettlementAPI interface {
	Statistics(ctx context.Context, q Query) ([]*entity.StatNode, error)
	BranchCommission(ctx context.Context, q Query) ([]entity.BranchCommission, error)
	SettlementAmounts(ctx context.Context, q Query) ([]entity.SettlementAmount, error)
}

// TerminalAPI CRUD de terminales.
type TerminalAPI interface {
	GetTerminal(ctx context.Context, id int64) (*entity.Terminal, error)
	CreateTerminal(ctx context.Context, in dto.TerminalRequest) (*entity.Terminal, error)
	UpdateTerminal(ctx context.Context, id int64, in dto.TerminalRequest) (*entity.Terminal, error)
	DeleteTerminal(ctx context.Context, id int64) error
	// CheckTerminalDuplicate devuelve true si el código ya está registrado.
	CheckTerminalDuplicate(ctx context.Context, terminalCode string) (bool, error)
}

// CenterAPI configuración de centros (tenant / PG).
type CenterAPI interface {
	Centers(ctx context.Context) ([]entity.Center, error)
	CenterDetail(ctx context.Context, centerID int64) (*entity.Center, error)
	CreateCenter(ctx context.Context, in dto.CenterRequest) (*entity.Center, error)
	UpdateCenter(ctx context.Context, id int64, in dto.CenterRequest) (*entity.Center, error)
}

// TotpAPI segundo factor de las credenciales del centro.
type TotpAPI interface {
	TotpStatus(ctx context.Context, centerID int64) (*entity.TotpStatus, error)
	TotpSetup(ctx context.Context, centerID int64) (*entity.TotpSetup, error)
	TotpEnable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error)
	TotpDisable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error)
	TotpVerify(ctx context.Context, in dto.TotpCodeRequest) (bool, error)
}

// UserAPI utilidades de usuarios.
type UserAPI interface {
	// CheckLoginIDDuplicate devuelve true si el loginId ya existe.
	CheckLoginIDDuplicate(ctx context.Context, loginID string) (bool, error)
}

// WebAdminAPI el API remoto completo.
type WebAdminAPI interface {
	ListAPI
	AuthAPI
	CompanyAPI
	MerchantAPI
	CommissionAPI
	PaymentAPI
	SettlementAPI
	TerminalAPI
	CenterAPI
	TotpAPI
	UserAPI
}
