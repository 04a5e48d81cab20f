package dto

// StatisticsQuery filtros de los reportes de liquidación.
type StatisticsQuery struct {
	StartDate      string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	CompanyID      int64  `query:"companyId" validate:"min=0"`
	PaymentPurpose string `query:"paymentPurpose" validate:"omitempty,oneof=DELIVERY_FEE MONTHLY_RENT"`
}

// StatisticsRow fila aplanada del árbol de estadísticas para la tabla.
type StatisticsRow struct {
	Kind                         string `json:"kind"`
	Depth                        int    `json:"depth"`
	CompanyID                    int64  `json:"companyId"`
	CompanyName                  string `json:"companyName"`
	Level                        int    `json:"level"`
	LevelName                    string `json:"levelName"`
	CommissionRate               string `json:"commissionRate,omitempty"`
	TransactionCount             int64  `json:"transactionCount"`
	TransactionAmount            string `json:"transactionAmount"`
	CancelCount                  int64  `json:"cancelCount"`
	CancelAmount                 string `json:"cancelAmount"`
	MerchantSettlementAmount     string `json:"merchantSettlementAmount"`
	HeadquartersSettlementAmount string `json:"headquartersSettlementAmount"`
	BranchSettlementAmount       string `json:"branchSettlementAmount"`
	DistributorSettlementAmount  string `json:"distributorSettlementAmount"`
	AgentSettlementAmount        string `json:"agentSettlementAmount"`
	DepositAmount                string `json:"depositAmount"`
	BankName                     string `json:"bankName,omitempty"`
	AccountNumber                string `json:"accountNumber,omitempty"`
	AccountHolder                string `json:"accountHolder,omitempty"`
}

// StatisticsResponse filas más la fila de totales.
type StatisticsResponse struct {
	Rows  []StatisticsRow `json:"rows"`
	Total StatisticsRow   `json:"total"`
}
