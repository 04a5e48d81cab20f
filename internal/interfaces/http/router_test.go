package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/application/auth"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/memory"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/qrcode"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/webadmin"
	"github.com/jhoicas/settlement-admin/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/settlement-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/settlement-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const remoteSecret = "remote-api-secret"

type testEnv struct {
	app      *fiber.App
	sessions *session.Manager
}

// newEnv arma el gateway completo contra un API remoto simulado con mux.
func newEnv(t *testing.T, mux *http.ServeMux, limiter *apphttp.LoginRateLimiter) *testEnv {
	t.Helper()
	remote := httptest.NewServer(mux)
	t.Cleanup(remote.Close)

	client := webadmin.New(webadmin.Options{BaseURL: remote.URL})
	sessions := session.NewManager(client, memory.NewPreferenceRepository(), nil)
	client.SetOnUnauthorized(sessions.Expire)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions:     sessions,
		AuthUC:       auth.NewAuthUseCase(client, sessions, nil),
		ViewUC:       usecase.NewViewUseCase(),
		CompanyUC:    usecase.NewCompanyUseCase(client, client),
		MerchantUC:   usecase.NewMerchantUseCase(client),
		CommissionUC: usecase.NewCommissionUseCase(client, nil),
		PaymentUC:    usecase.NewPaymentUseCase(client),
		SettlementUC: usecase.NewSettlementUseCase(client, nil, xlsx.NewStatisticsRenderer()),
		TerminalUC:   usecase.NewTerminalUseCase(client),
		CenterUC:     usecase.NewCenterUseCase(client),
		TotpUC:       usecase.NewTotpUseCase(client, qrcode.NewGenerator()),
		UserUC:       usecase.NewUserUseCase(client),
		LoginLimiter: limiter,
	})
	return &testEnv{app: app, sessions: sessions}
}

func tokenFor(t *testing.T, loginID string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(remoteSecret, pkgjwt.Claims{LoginID: loginID, Name: "관리자", Level: 0}, expMinutes)
	require.NoError(t, err)
	return tok
}

// login abre la sesión de un token emitido por el API remoto, igual que POST /api/auth/login.
func (e *testEnv) login(t *testing.T, loginID string) string {
	t.Helper()
	tok := tokenFor(t, loginID, 60)
	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)
	_, err = e.sessions.Open(context.Background(), tok, claims)
	require.NoError(t, err)
	return tok
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AbreSesion(t *testing.T) {
	tok := tokenFor(t, "admin", 60)
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", jsonHandler(http.StatusOK, `{"data":{"accessToken":"`+tok+`"}}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", `{"loginId":" admin ","password":"pw"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, tok, body["token"])
	sess, _ := body["session"].(map[string]interface{})
	assert.Equal(t, "admin", sess["loginId"])
	assert.Equal(t, 1, env.sessions.Count())

	resp, _ = env.do(t, http.MethodGet, "/api/session", tok, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_CredencialesRechazadas(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", jsonHandler(http.StatusUnauthorized, `{"message":"아이디 또는 비밀번호가 올바르지 않습니다"}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", `{"loginId":"admin","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
	assert.Contains(t, body["message"], "비밀번호")
}

func TestLogin_ValidacionLocal(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", `{"loginId":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestLogin_RateLimitPorIP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", jsonHandler(http.StatusUnauthorized, `{"message":"no"}`))
	env := newEnv(t, mux, apphttp.NewLoginRateLimiter(1, 1))

	resp, _ := env.do(t, http.MethodPost, "/api/auth/login", "", `{"loginId":"a","password":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", `{"loginId":"a","password":"b"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

func TestLogout_CierraWorkspace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout", jsonHandler(http.StatusOK, `{}`))
	env := newEnv(t, mux, nil)
	tok := env.login(t, "admin")

	resp, _ := env.do(t, http.MethodGet, "/api/session", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, env.sessions.Count())

	resp, _ = env.do(t, http.MethodPost, "/api/auth/logout", tok, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, env.sessions.Count())
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/session", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/session", "no-es-un-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/session", tokenFor(t, "admin", -5), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
}

func TestAuthMiddleware_TokenSinLogin(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/session", tokenFor(t, "admin", 60), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
	assert.Zero(t, env.sessions.Count(), "un token que no pasó por el login no abre sesión")
}

func TestAuthMiddleware_TokenForjadoNoVeDatosDeOtroUsuario(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/payments", jsonHandler(http.StatusOK,
		`{"payments":[{"id":1,"merchantName":"VICTIM-SECRET"}],"totalElements":1,"totalPages":1}`))
	mux.HandleFunc("/merchant-commissions", jsonHandler(http.StatusOK,
		`{"commissions":[{"id":1,"merchantName":"VICTIM-SECRET","merchantCommission":5}],"totalElements":1,"totalPages":1}`))
	env := newEnv(t, mux, nil)
	victim := env.login(t, "victim")

	resp, _ := env.do(t, http.MethodGet, "/api/views/payments?refresh=true", victim, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.do(t, http.MethodGet, "/api/views/commissions?refresh=true", victim, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	forged, err := pkgjwt.Generate("attacker-secret", pkgjwt.Claims{LoginID: "victim", Name: "x"}, 60)
	require.NoError(t, err)
	for _, path := range []string{"/api/views/payments", "/api/commissions/rows", "/api/session"} {
		resp, body := env.do(t, http.MethodGet, path, forged, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "SESSION_EXPIRED", body["code"], path)
		assert.NotContains(t, fmt.Sprint(body), "VICTIM-SECRET", path)
	}

	// Un token forjado y vencido con el mismo loginId no cierra la sesión de la víctima.
	expired, err := pkgjwt.Generate("attacker-secret", pkgjwt.Claims{LoginID: "victim"}, -5)
	require.NoError(t, err)
	resp, _ = env.do(t, http.MethodGet, "/api/session", expired, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, 1, env.sessions.Count())
	resp, body := env.do(t, http.MethodGet, "/api/views/payments", victim, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["totalElements"])
}

func TestRemoto401_ExpiraSesion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/companies/7", jsonHandler(http.StatusUnauthorized, `{"message":"expired"}`))
	env := newEnv(t, mux, nil)
	tok := env.login(t, "admin")

	resp, body := env.do(t, http.MethodGet, "/api/companies/7", tok, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
	assert.Equal(t, 0, env.sessions.Count(), "el workspace se destruye con el 401 remoto")
}

func TestRemoto403_NoExpiraSesion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/companies/7", jsonHandler(http.StatusForbidden, `{"message":"권한이 없습니다"}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodGet, "/api/companies/7", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, 1, env.sessions.Count())
}

func TestRemoto500_Upstream(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/companies/7", jsonHandler(http.StatusInternalServerError, `{"message":"boom"}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodGet, "/api/companies/7", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM", body["code"])
	assert.Equal(t, "boom", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y vistas
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_ToggleYCentro(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	tok := env.login(t, "admin")

	resp, body := env.do(t, http.MethodPost, "/api/session/theme/toggle", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dark", body["theme"])

	resp, body = env.do(t, http.MethodPut, "/api/session/center", tok, `{"centerId":4}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 4, body["centerId"])

	resp, body = env.do(t, http.MethodPut, "/api/session/center", tok, `{"centerId":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestViews_VistaDesconocida(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/views/nope", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_VIEW", body["code"])
}

func TestViews_RefreshCargaPagina(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/merchants", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		jsonHandler(http.StatusOK, `{"merchants":[{"id":1,"merchantName":"상점"}],"totalElements":11,"totalPages":2}`)(w, r)
	})
	env := newEnv(t, mux, nil)
	tok := env.login(t, "admin")

	resp, body := env.do(t, http.MethodPost, "/api/views/merchants/keyword", tok, `{"keyword":"상점"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, gotQuery, "cambiar la palabra clave no recarga")

	resp, body = env.do(t, http.MethodPost, "/api/views/merchants/search", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 11, body["totalElements"])
	items, _ := body["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Contains(t, gotQuery, "page=0")
	assert.Contains(t, gotQuery, "size=10")
}

func TestViews_FalloDeCargaQuedaEnLastError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/merchants", jsonHandler(http.StatusInternalServerError, `{"message":"db down"}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodGet, "/api/views/merchants?refresh=true", env.login(t, "admin"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["totalElements"])
	assert.NotEmpty(t, body["lastError"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Comisiones
// ──────────────────────────────────────────────────────────────────────────────

func TestCommissions_CasaMatrizNegativaBloqueaGuardado(t *testing.T) {
	putCalled := false
	mux := http.NewServeMux()
	mux.HandleFunc("/merchant-commissions", jsonHandler(http.StatusOK, `{"commissions":[{"id":1,"merchantId":10,
		"merchantName":"상점","paymentPurpose":"DELIVERY_FEE","merchantCommission":5,
		"branchCommission":3,"distributorCommission":2,"agentCommission":0}],"totalElements":1,"totalPages":1}`))
	mux.HandleFunc("/merchant-commissions/1", func(w http.ResponseWriter, r *http.Request) {
		putCalled = true
		jsonHandler(http.StatusOK, `{}`)(w, r)
	})
	env := newEnv(t, mux, nil)
	tok := env.login(t, "admin")

	resp, _ := env.do(t, http.MethodGet, "/api/views/commissions?refresh=true", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.do(t, http.MethodPatch, "/api/commissions/1", tok, `{"field":"agent","value":"1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["dirty"])

	resp, body = env.do(t, http.MethodPost, "/api/commissions/1/save", tok, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "NEGATIVE_HEADQUARTERS", body["code"])
	assert.Contains(t, body["message"], "5")
	assert.False(t, putCalled, "no se envía el PUT con casa matriz negativa")
}

func TestCommissions_FilaInexistente(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodPost, "/api/commissions/99/save", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Recursos
// ──────────────────────────────────────────────────────────────────────────────

func TestTerminals_CheckDuplicate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/merchant-terminals/check-duplicate", jsonHandler(http.StatusOK, `{"data":true}`))
	env := newEnv(t, mux, nil)

	resp, body := env.do(t, http.MethodGet, "/api/terminals/check-duplicate?terminalCode=T-1", env.login(t, "admin"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["duplicate"])
}

func TestCompanies_IDInvalido(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/companies/abc", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_ID", body["code"])
}

func TestSettlements_ExportXLSX(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/settlements/statistics", jsonHandler(http.StatusOK,
		`[{"companyId":1,"companyName":"지사A","level":1,"summary":{"transactionCount":2,"transactionAmount":1000}}]`))
	env := newEnv(t, mux, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/settlements/statistics/report.xlsx?startDate=2024-01-01&endDate=2024-01-31", nil)
	req.Header.Set("Authorization", "Bearer "+env.login(t, "admin"))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, len(raw) > 4 && string(raw[:2]) == "PK", "xlsx es un zip")
}

func TestSettlements_FormatoSinRenderer(t *testing.T) {
	env := newEnv(t, http.NewServeMux(), nil)
	resp, body := env.do(t, http.MethodGet, "/api/settlements/statistics/report.pdf", env.login(t, "admin"), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}
