package entity

import "time"

// Temas de interfaz.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preference estado de conveniencia de UI persistido por usuario
// (centro seleccionado, propósito de pago, barra lateral y tema).
// No es un sistema de registro: se puede perder sin consecuencias.
type Preference struct {
	LoginID          string
	CenterID         int64
	PaymentPurpose   string
	SidebarCollapsed bool
	Theme            string
	UpdatedAt        time.Time
}
