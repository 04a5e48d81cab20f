package dto

// CommissionEditRequest una pulsación sobre un campo editable de la fila.
type CommissionEditRequest struct {
	Field string `json:"field" validate:"required,oneof=branch distributor agent"`
	Value string `json:"value" validate:"max=10"`
}

// CommissionRowResponse fila de la tabla de comisiones con el remanente de casa matriz ya calculado.
type CommissionRowResponse struct {
	ID                     int64  `json:"id"`
	MerchantID             int64  `json:"merchantId"`
	MerchantName           string `json:"merchantName"`
	PaymentPurpose         string `json:"paymentPurpose"`
	MerchantCommission     string `json:"merchantCommission"`
	BranchCommission       string `json:"branchCommission"`
	DistributorCommission  string `json:"distributorCommission"`
	AgentCommission        string `json:"agentCommission"`
	HeadquartersCommission string `json:"headquartersCommission"`
	HeadquartersNegative   bool   `json:"headquartersNegative"`
	Dirty                  bool   `json:"dirty"`
	Saving                 bool   `json:"saving"`
	Error                  string `json:"error,omitempty"`
}
