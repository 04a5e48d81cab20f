package entity

import "github.com/shopspring/decimal"

// Propósitos de pago con tabla de comisiones propia.
const (
	PaymentPurposeDeliveryFee = "DELIVERY_FEE"
	PaymentPurposeMonthlyRent = "MONTHLY_RENT"
)

// Commission fila de comisión por comercio y propósito de pago (porcentajes).
// La comisión de casa matriz (본사) es siempre el remanente:
// merchant − (branch + distributor + agent).
type Commission struct {
	ID                     int64           `json:"id"`
	MerchantID             int64           `json:"merchantId"`
	MerchantName           string          `json:"merchantName"`
	PaymentPurpose         string          `json:"paymentPurpose"`
	MerchantCommission     decimal.Decimal `json:"merchantCommission"`
	BranchCommission       decimal.Decimal `json:"branchCommission"`
	DistributorCommission  decimal.Decimal `json:"distributorCommission"`
	AgentCommission        decimal.Decimal `json:"agentCommission"`
	HeadquartersCommission decimal.Decimal `json:"headquartersCommission"`
	UpdatedAt              string          `json:"updatedAt,omitempty"`
}

// CommissionHistory entrada de auditoría de cambios de comisión.
type CommissionHistory struct {
	ID                     int64           `json:"id"`
	CommissionID           int64           `json:"commissionId"`
	BranchCommission       decimal.Decimal `json:"branchCommission"`
	DistributorCommission  decimal.Decimal `json:"distributorCommission"`
	AgentCommission        decimal.Decimal `json:"agentCommission"`
	HeadquartersCommission decimal.Decimal `json:"headquartersCommission"`
	ChangedBy              string          `json:"changedBy"`
	ChangedAt              string          `json:"changedAt"`
}
