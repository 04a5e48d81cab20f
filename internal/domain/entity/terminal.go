package entity

// Terminal vincula un código de terminal de pago externo con un comercio.
// El código es único; se comprueba con check-duplicate antes de guardar.
type Terminal struct {
	ID           int64  `json:"id"`
	TerminalCode string `json:"terminalCode"`
	MerchantID   int64  `json:"merchantId"`
	MerchantName string `json:"merchantName,omitempty"`
	PGCode       string `json:"pgCode"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
