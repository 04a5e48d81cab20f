package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims que emite el API remoto. Solo se leen para la interfaz
// (menús por nivel, centro seleccionado); la autorización real la aplica el servidor.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"userId"`
	LoginID   string `json:"loginId"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	CompanyID int64  `json:"companyId"`
	CenterID  int64  `json:"centerId"`
}

// Decode lee los claims del token SIN verificar la firma.
// El gateway no conoce el secreto del API y no debe tomar decisiones de acceso con estos datos.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar token: %w", err)
	}
	return claims, nil
}

// Expired indica si el claim exp ya pasó respecto a now. Sin exp se considera vigente.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Generate firma un token HS256 con los claims indicados. Lo usan los tests y
// el API simulado; en producción los tokens los emite el API remoto.
func Generate(secret string, claims Claims, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute))
	if claims.Subject == "" {
		claims.Subject = claims.LoginID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
