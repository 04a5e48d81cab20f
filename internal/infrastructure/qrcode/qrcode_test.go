package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/infrastructure/qrcode"
)

func TestGenerator_PNG(t *testing.T) {
	out, err := qrcode.NewGenerator().PNG("otpauth://totp/Center:4?secret=JBSWY3DPEHPK3PXP&issuer=Center", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerator_ContenidoVacio(t *testing.T) {
	_, err := qrcode.NewGenerator().PNG("", 256)
	assert.Error(t, err)
}

func TestGenerator_TamañoMenorAlCodigo(t *testing.T) {
	_, err := qrcode.NewGenerator().PNG("otpauth://totp/x?secret=ABC", 5)
	assert.Error(t, err)
}
