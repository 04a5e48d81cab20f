package entity

import "github.com/shopspring/decimal"

// StatSummary agregado de liquidación de una organización (o de un tramo de tasa).
type StatSummary struct {
	TransactionCount             int64           `json:"transactionCount"`
	TransactionAmount            decimal.Decimal `json:"transactionAmount"`
	CancelCount                  int64           `json:"cancelCount"`
	CancelAmount                 decimal.Decimal `json:"cancelAmount"`
	MerchantSettlementAmount     decimal.Decimal `json:"merchantSettlementAmount"`
	HeadquartersSettlementAmount decimal.Decimal `json:"headquartersSettlementAmount"`
	BranchSettlementAmount       decimal.Decimal `json:"branchSettlementAmount"`
	DistributorSettlementAmount  decimal.Decimal `json:"distributorSettlementAmount"`
	AgentSettlementAmount        decimal.Decimal `json:"agentSettlementAmount"`
}

// Add devuelve la suma campo a campo de dos agregados.
func (s StatSummary) Add(o StatSummary) StatSummary {
	return StatSummary{
		TransactionCount:             s.TransactionCount + o.TransactionCount,
		TransactionAmount:            s.TransactionAmount.Add(o.TransactionAmount),
		CancelCount:                  s.CancelCount + o.CancelCount,
		CancelAmount:                 s.CancelAmount.Add(o.CancelAmount),
		MerchantSettlementAmount:     s.MerchantSettlementAmount.Add(o.MerchantSettlementAmount),
		HeadquartersSettlementAmount: s.HeadquartersSettlementAmount.Add(o.HeadquartersSettlementAmount),
		BranchSettlementAmount:       s.BranchSettlementAmount.Add(o.BranchSettlementAmount),
		DistributorSettlementAmount:  s.DistributorSettlementAmount.Add(o.DistributorSettlementAmount),
		AgentSettlementAmount:        s.AgentSettlementAmount.Add(o.AgentSettlementAmount),
	}
}

// RateSummary agregado de un tramo de tasa de comisión dentro de summaryArr.
type RateSummary struct {
	CommissionRate decimal.Decimal `json:"commissionRate"`
	StatSummary
}

// BankInfo datos de depósito de la organización.
type BankInfo struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// StatNode nodo del árbol de estadísticas jerárquicas (snapshot de solo lectura).
type StatNode struct {
	CompanyID   int64         `json:"companyId"`
	CompanyName string        `json:"companyName"`
	Level       int           `json:"level"`
	Summary     StatSummary   `json:"summary"`
	SummaryArr  []RateSummary `json:"summaryArr"`
	BankInfo    *BankInfo     `json:"bankinfo,omitempty"`
	Children    []*StatNode   `json:"children"`
}

// SettlementAmount fila de /settlements/amounts.
type SettlementAmount struct {
	SettlementDate string          `json:"settlementDate"`
	CompanyID      int64           `json:"companyId"`
	CompanyName    string          `json:"companyName"`
	Level          int             `json:"level"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
}

// BranchCommission fila de /settlements/statistics/branch-commission.
type BranchCommission struct {
	BranchID          int64           `json:"branchId"`
	BranchName        string          `json:"branchName"`
	CommissionRate    decimal.Decimal `json:"commissionRate"`
	TransactionCount  int64           `json:"transactionCount"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	CommissionAmount  decimal.Decimal `json:"commissionAmount"`
}

// MerchantSettlement fila de /settlements/merchants/period y /daily.
type MerchantSettlement struct {
	SettlementDate    string          `json:"settlementDate,omitempty"`
	MerchantID        int64           `json:"merchantId"`
	MerchantName      string          `json:"merchantName"`
	CompanyName       string          `json:"companyName,omitempty"`
	TransactionCount  int64           `json:"transactionCount"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	CancelCount       int64           `json:"cancelCount"`
	CancelAmount      decimal.Decimal `json:"cancelAmount"`
	Fee               decimal.Decimal `json:"fee"`
	SettlementAmount  decimal.Decimal `json:"settlementAmount"`
	Status            string          `json:"status,omitempty"`
}
