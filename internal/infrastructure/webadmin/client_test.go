package webadmin_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/webadmin"
)

type captured struct {
	mu      sync.Mutex
	method  string
	path    string
	query   string
	auth    string
	reqID   string
	payload map[string]interface{}
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.method = r.Method
		c.path = r.URL.Path
		c.query = r.URL.RawQuery
		c.auth = r.Header.Get("Authorization")
		c.reqID = r.Header.Get(webadmin.HeaderRequestID)
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &c.payload)
		}
		c.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func ctxWithToken() context.Context {
	return ports.WithToken(context.Background(), "tok-123")
}

// ── Cabeceras y sobre ─────────────────────────────────────────────────────────

func TestClient_EnviaBearerYRequestID(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"data":{"id":7,"companyName":"지사A","level":1}}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	company, err := client.GetCompany(ctxWithToken(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", c.auth)
	assert.NotEmpty(t, c.reqID)
	assert.Equal(t, "/companies/7", c.path)
	assert.Equal(t, http.MethodGet, c.method)
	assert.Equal(t, "지사A", company.Name)
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"accessToken":"jwt-abc"}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	res, err := client.Login(context.Background(), dto.LoginRequest{LoginID: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", res.AccessToken)
	assert.Empty(t, c.auth)
	assert.Equal(t, "/auth/login", c.path)
	assert.Equal(t, "admin", c.payload["loginId"])
}

func TestClient_LoginAceptaCampoToken(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"success":true,"data":{"token":"jwt-xyz"}}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	res, err := client.Login(context.Background(), dto.LoginRequest{LoginID: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-xyz", res.AccessToken)
}

// ── Política de errores ───────────────────────────────────────────────────────

func TestClient_401DisparaHookConElToken(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"토큰 만료"}`)
	var expired []string
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})
	client.SetOnUnauthorized(func(token string) { expired = append(expired, token) })

	_, err := client.GetMerchant(ctxWithToken(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, []string{"tok-123"}, expired)

	var apiErr *ports.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "토큰 만료", apiErr.Message)
}

func TestClient_401SinTokenNoDisparaHook(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"아이디 또는 비밀번호가 올바르지 않습니다"}`)
	called := false
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL, OnUnauthorized: func(string) { called = true }})

	_, err := client.Login(context.Background(), dto.LoginRequest{LoginID: "a", Password: "b"})
	require.Error(t, err)
	assert.False(t, called)
}

func TestClient_403SePropagaComoForbidden(t *testing.T) {
	srv, _ := newServer(t, http.StatusForbidden, `{"success":false,"data":{"message":"권한이 없습니다"}}`)
	called := false
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL, OnUnauthorized: func(string) { called = true }})

	err := client.DeleteMerchant(ctxWithToken(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "권한이 없습니다", err.Error())
	assert.False(t, called, "403 no cierra la sesión")
}

func TestClient_MensajeDeCampoError(t *testing.T) {
	srv, _ := newServer(t, http.StatusConflict, `{"error":"이미 등록된 단말기입니다"}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	err := client.DeleteTerminal(ctxWithToken(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "이미 등록된 단말기입니다", err.Error())
}

func TestClient_ErrorSinCuerpoUsaMetodoYRuta(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, ``)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	_, err := client.Receipt(ctxWithToken(), 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/payments/9/receipt")
	assert.Contains(t, err.Error(), "500")
}

// ── Listados ──────────────────────────────────────────────────────────────────

func TestClient_ListExtraeCampoYPaginacion(t *testing.T) {
	srv, c := newServer(t, http.StatusOK,
		`{"data":{"payments":[{"id":1},{"id":2}],"totalElements":42,"totalPages":5}}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	page, err := client.List(ctxWithToken(), "/payments", "payments", ports.Query{"page": "0", "size": "10"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(42), page.TotalElements)
	assert.Equal(t, 5, page.TotalPages)
	assert.Contains(t, c.query, "page=0")
	assert.Contains(t, c.query, "size=10")
}

func TestClient_ListAceptaContentYArregloDesnudo(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"content":[{"id":1}],"totalElements":1,"totalPages":1}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})
	page, err := client.List(ctxWithToken(), "/merchants", "merchants", nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	srv2, _ := newServer(t, http.StatusOK, `[{"id":1},{"id":2},{"id":3}]`)
	client2 := webadmin.New(webadmin.Options{BaseURL: srv2.URL})
	page, err = client2.List(ctxWithToken(), "/merchants", "merchants", nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestClient_ListTotalesComoCadena(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK,
		`{"data":{"payments":[{"id":1}],"totalElements":"12","totalPages":"2"}}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	page, err := client.List(ctxWithToken(), "/payments", "payments", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestClient_ListTotalNoNumericoEsError(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"payments":[],"totalElements":"doce"}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	_, err := client.List(ctxWithToken(), "/payments", "payments", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalElements")
}

func TestClient_ListSinCampoDevuelveVacio(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"totalElements":0}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})
	page, err := client.List(ctxWithToken(), "/companies", "companies", nil)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

// ── Recursos ──────────────────────────────────────────────────────────────────

func TestClient_CheckTerminalDuplicate(t *testing.T) {
	for body, want := range map[string]bool{
		`true`:                          true,
		`{"data":false}`:                false,
		`{"duplicate":true}`:            true,
		`{"data":{"exists":false}}`:     false,
		`{"data":{"isDuplicate":true}}`: true,
	} {
		srv, c := newServer(t, http.StatusOK, body)
		client := webadmin.New(webadmin.Options{BaseURL: srv.URL})
		got, err := client.CheckTerminalDuplicate(ctxWithToken(), "T-01")
		require.NoError(t, err, body)
		assert.Equal(t, want, got, body)
		assert.Equal(t, "terminalCode=T-01", c.query)
	}
}

func TestClient_TotpVerify(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"data":{"valid":true}}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	ok, err := client.TotpVerify(ctxWithToken(), dto.TotpCodeRequest{CenterID: 4, Code: "123456"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/center-totp/verify", c.path)
	assert.Equal(t, "123456", c.payload["code"])
}

func TestClient_TotpSetupEnviaCenterID(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"secret":"ABC","otpAuthUrl":"otpauth://totp/x"}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	setup, err := client.TotpSetup(ctxWithToken(), 4)
	require.NoError(t, err)
	assert.Equal(t, "ABC", setup.Secret)
	assert.EqualValues(t, 4, c.payload["centerId"])
}

func TestClient_StatisticsArbolAnidado(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"data":[{"companyId":1,"companyName":"A","level":1,
		"children":[{"companyId":2,"companyName":"B","level":2}]}]}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	nodes, err := client.Statistics(ctxWithToken(), ports.Query{"startDate": "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "B", nodes[0].Children[0].CompanyName)
	assert.Equal(t, "/settlements/statistics", c.path)
	assert.Equal(t, "startDate=2024-01-01", c.query)
}

func TestClient_CenterDetailPorQuery(t *testing.T) {
	srv, c := newServer(t, http.StatusOK, `{"id":4,"centerName":"센터"}`)
	client := webadmin.New(webadmin.Options{BaseURL: srv.URL})

	center, err := client.CenterDetail(ctxWithToken(), 4)
	require.NoError(t, err)
	assert.Equal(t, "센터", center.Name)
	assert.Equal(t, "/centers/detail", c.path)
	assert.Equal(t, "centerId=4", c.query)
}
