package entity

import "github.com/shopspring/decimal"

// Merchant comercio afiliado; pertenece exactamente a una Company.
type Merchant struct {
	ID                    int64           `json:"id"`
	CompanyID             int64           `json:"companyId"`
	CompanyName           string          `json:"companyName,omitempty"`
	Name                  string          `json:"merchantName"`
	BusinessNumber        string          `json:"businessNumber"`
	Representative        string          `json:"representative"`
	Address               string          `json:"address"`
	Phone                 string          `json:"phone"`
	Email                 string          `json:"email"`
	BankName              string          `json:"bankName"`
	AccountNumber         string          `json:"accountNumber"`
	AccountHolder         string          `json:"accountHolder"`
	DeliveryFeeCommission decimal.Decimal `json:"deliveryFeeCommission"`
	MonthlyRentCommission decimal.Decimal `json:"monthlyRentCommission"`
	PerTransactionLimit   decimal.Decimal `json:"perTransactionLimit"`
	DailyLimit            decimal.Decimal `json:"dailyLimit"`
	MonthlyLimit          decimal.Decimal `json:"monthlyLimit"`
	SettlementCycle       string          `json:"settlementCycle"` // D+0, D+1, ...
	ContractStatus        string          `json:"contractStatus"`
	CreatedAt             string          `json:"createdAt,omitempty"`
}
