package dto

// SessionResponse estado de la aplicación visible para la UI.
// Los claims son solo de presentación: ningún handler autoriza con ellos.
type SessionResponse struct {
	LoginID          string `json:"loginId"`
	Name             string `json:"name"`
	Level            int    `json:"level"`
	LevelName        string `json:"levelName"`
	CompanyID        int64  `json:"companyId"`
	CenterID         int64  `json:"centerId"`
	PaymentPurpose   string `json:"paymentPurpose"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Theme            string `json:"theme"`
	ExpiresAt        int64  `json:"expiresAt,omitempty"`
}

// SwitchCenterRequest cambio de centro activo.
type SwitchCenterRequest struct {
	CenterID int64 `json:"centerId" validate:"gt=0"`
}

// PaymentPurposeRequest cambio de propósito de pago activo.
type PaymentPurposeRequest struct {
	PaymentPurpose string `json:"paymentPurpose" validate:"required,oneof=DELIVERY_FEE MONTHLY_RENT"`
}
