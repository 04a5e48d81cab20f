package entity

import "github.com/shopspring/decimal"

// Payment transacción de pago; inmutable desde el punto de vista del back-office.
type Payment struct {
	ID               int64           `json:"id"`
	MerchantID       int64           `json:"merchantId"`
	MerchantName     string          `json:"merchantName"`
	PGCode           string          `json:"pgCode"`
	TerminalCode     string          `json:"terminalCode"`
	ApprovalNumber   string          `json:"approvalNumber"`
	ApprovalAmount   decimal.Decimal `json:"approvalAmount"`
	CancelAmount     decimal.Decimal `json:"cancelAmount"`
	Fee              decimal.Decimal `json:"fee"`
	SettlementAmount decimal.Decimal `json:"settlementAmount"`
	CardCompany      string          `json:"cardCompany,omitempty"`
	Installment      int             `json:"installment"`
	PaymentPurpose   string          `json:"paymentPurpose"`
	Status           string          `json:"status"` // APPROVED, CANCELLED, PARTIAL_CANCELLED
	ApprovedAt       string          `json:"approvedAt"`
	CancelledAt      string          `json:"cancelledAt,omitempty"`
}

// Receipt comprobante de una transacción tal como lo devuelve el API.
type Receipt struct {
	PaymentID      int64           `json:"paymentId"`
	MerchantName   string          `json:"merchantName"`
	BusinessNumber string          `json:"businessNumber"`
	Representative string          `json:"representative"`
	Address        string          `json:"address"`
	CardCompany    string          `json:"cardCompany"`
	CardNumber     string          `json:"cardNumber"`
	ApprovalNumber string          `json:"approvalNumber"`
	Amount         decimal.Decimal `json:"amount"`
	Vat            decimal.Decimal `json:"vat"`
	Installment    int             `json:"installment"`
	ApprovedAt     string          `json:"approvedAt"`
}
