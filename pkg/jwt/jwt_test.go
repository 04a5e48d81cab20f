package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/settlement-admin/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestDecode_LeeClaimsSinVerificarFirma(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{
		UserID: 7, LoginID: "branch01", Name: "지사", Level: 1, CompanyID: 12, CenterID: 3,
	}, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "branch01", claims.LoginID)
	assert.Equal(t, "branch01", claims.Subject, "sin subject explícito se usa el loginId")
	assert.Equal(t, 1, claims.Level)
	assert.Equal(t, int64(12), claims.CompanyID)
	assert.Equal(t, int64(3), claims.CenterID)
	assert.False(t, claims.Expired(time.Now()))
}

func TestDecode_TokenExpiradoSeDecodifica(t *testing.T) {
	// La expiración no invalida la lectura: solo la informa.
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{LoginID: "agent01", Level: 3}, -1)
	require.NoError(t, err)

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestDecode_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.Decode("token.invalido.aqui")
	assert.Error(t, err)

	_, err = pkgjwt.Decode("")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Claims{}, 60)
	assert.Error(t, err)
}
