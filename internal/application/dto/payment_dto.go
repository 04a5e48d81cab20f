package dto

import "github.com/shopspring/decimal"

// CancelPaymentRequest cancelación total o parcial (POST /payments/{id}/cancel).
type CancelPaymentRequest struct {
	CancelAmount decimal.Decimal `json:"cancelAmount" validate:"gt=0"`
	Reason       string          `json:"reason" validate:"max=200"`
}

// RegisterTerminalRequest asocia el terminal de una transacción no registrada a un comercio.
type RegisterTerminalRequest struct {
	MerchantID   int64  `json:"merchantId" validate:"gt=0"`
	TerminalCode string `json:"terminalCode" validate:"required,max=50"`
}
