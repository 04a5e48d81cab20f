package dto

// TerminalRequest alta o edición de un terminal (POST/PUT /merchant-terminals).
type TerminalRequest struct {
	TerminalCode string `json:"terminalCode" validate:"required,max=50"`
	MerchantID   int64  `json:"merchantId" validate:"gt=0"`
	PGCode       string `json:"pgCode" validate:"required,max=20"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}
