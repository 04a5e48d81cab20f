package dto

// CenterRequest alta o edición de un centro (POST/PUT /centers).
type CenterRequest struct {
	Name      string `json:"centerName" validate:"required,max=100"`
	PGCode    string `json:"pgCode" validate:"required,max=20"`
	APIKey    string `json:"apiKey,omitempty" validate:"max=200"`
	APISecret string `json:"apiSecret,omitempty" validate:"max=200"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// TotpCodeRequest código de 6 dígitos para enable/disable/verify.
type TotpCodeRequest struct {
	CenterID int64  `json:"centerId" validate:"gt=0"`
	Code     string `json:"code" validate:"required,len=6,numeric"`
}

// TotpSetupResponse secreto, URL otpauth y QR PNG en base64 para escanear.
type TotpSetupResponse struct {
	Secret     string `json:"secret"`
	OtpAuthURL string `json:"otpAuthUrl"`
	QRCodePNG  string `json:"qrCodePng"`
}

// TotpVerifyResponse resultado de la verificación.
type TotpVerifyResponse struct {
	Valid bool `json:"valid"`
}

// CenterIDRequest cuerpo con solo el centro (setup de TOTP).
type CenterIDRequest struct {
	CenterID int64 `json:"centerId" validate:"gt=0"`
}
