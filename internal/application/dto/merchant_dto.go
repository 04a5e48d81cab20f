package dto

import "github.com/shopspring/decimal"

// MerchantRequest alta o edición de un comercio (POST/PUT /merchants).
type MerchantRequest struct {
	CompanyID             int64           `json:"companyId" validate:"gt=0"`
	Name                  string          `json:"merchantName" validate:"required,max=100"`
	BusinessNumber        string          `json:"businessNumber" validate:"required,max=20"`
	Representative        string          `json:"representative" validate:"required,max=50"`
	Address               string          `json:"address" validate:"max=200"`
	Phone                 string          `json:"phone" validate:"max=20"`
	Email                 string          `json:"email" validate:"omitempty,email"`
	BankName              string          `json:"bankName" validate:"max=50"`
	AccountNumber         string          `json:"accountNumber" validate:"max=50"`
	AccountHolder         string          `json:"accountHolder" validate:"max=50"`
	DeliveryFeeCommission decimal.Decimal `json:"deliveryFeeCommission" validate:"min=0,max=100"`
	MonthlyRentCommission decimal.Decimal `json:"monthlyRentCommission" validate:"min=0,max=100"`
	PerTransactionLimit   decimal.Decimal `json:"perTransactionLimit" validate:"min=0"`
	DailyLimit            decimal.Decimal `json:"dailyLimit" validate:"min=0"`
	MonthlyLimit          decimal.Decimal `json:"monthlyLimit" validate:"min=0"`
	SettlementCycle       string          `json:"settlementCycle" validate:"omitempty,max=10"`
	ContractStatus        string          `json:"contractStatus,omitempty" validate:"omitempty,oneof=CONTRACTED TERMINATED PENDING"`
	CenterID              int64           `json:"centerId,omitempty"`
}
