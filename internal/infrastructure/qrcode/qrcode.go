// Package qrcode genera PNG de códigos QR (URL otpauth del TOTP del centro).
package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
)

var _ ports.QRGenerator = (*Generator)(nil)

// Generator implementa ports.QRGenerator.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// PNG codifica content con corrección M y lo escala a size×size.
func (Generator) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrcode: contenido vacío")
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrcode: codificar: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}
