package entity

// Center configuración de tenant / PG.
type Center struct {
	ID          int64  `json:"id"`
	Name        string `json:"centerName"`
	PGCode      string `json:"pgCode"`
	APIKey      string `json:"apiKey,omitempty"`
	HasSecret   bool   `json:"hasSecret"`
	TotpEnabled bool   `json:"totpEnabled"`
	Status      string `json:"status"`
}

// TotpStatus estado del segundo factor del centro.
type TotpStatus struct {
	Enabled    bool   `json:"enabled"`
	Configured bool   `json:"configured"`
	EnabledAt  string `json:"enabledAt,omitempty"`
}

// TotpSetup secreto y URL otpauth devueltos por /center-totp/setup.
type TotpSetup struct {
	Secret     string `json:"secret"`
	OtpAuthURL string `json:"otpAuthUrl"`
}
