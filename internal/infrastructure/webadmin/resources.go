package webadmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

func idPath(format string, id int64) string { return fmt.Sprintf(format, id) }

// ── Listados ──────────────────────────────────────────────────────────────────

// List GET path con filtros y extracción del arreglo field.
func (c *Client) List(ctx context.Context, path, field string, q ports.Query) (*ports.RawPage, error) {
	raw, err := c.raw(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	page, err := decodePage(raw, field)
	if err != nil {
		return nil, fmt.Errorf("webadmin: GET %s: %w", path, err)
	}
	return page, nil
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login POST /auth/login. Acepta accessToken o token en la respuesta.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	var res struct {
		AccessToken string `json:"accessToken"`
		Token       string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &res); err != nil {
		return nil, err
	}
	tok := res.AccessToken
	if tok == "" {
		tok = res.Token
	}
	return &dto.LoginResult{AccessToken: tok}, nil
}

// Logout POST /auth/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// ── Organizaciones ────────────────────────────────────────────────────────────

func (c *Client) GetCompany(ctx context.Context, id int64) (*entity.Company, error) {
	var out entity.Company
	if err := c.do(ctx, http.MethodGet, idPath("/companies/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCompany(ctx context.Context, in dto.CompanyRequest) (*entity.Company, error) {
	var out entity.Company
	if err := c.do(ctx, http.MethodPost, "/companies", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCompany(ctx context.Context, id int64, in dto.CompanyRequest) (*entity.Company, error) {
	var out entity.Company
	if err := c.do(ctx, http.MethodPut, idPath("/companies/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Comercios ─────────────────────────────────────────────────────────────────

func (c *Client) GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error) {
	var out entity.Merchant
	if err := c.do(ctx, http.MethodGet, idPath("/merchants/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMerchant(ctx context.Context, in dto.MerchantRequest) (*entity.Merchant, error) {
	var out entity.Merchant
	if err := c.do(ctx, http.MethodPost, "/merchants", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMerchant(ctx context.Context, id int64, in dto.MerchantRequest) (*entity.Merchant, error) {
	var out entity.Merchant
	if err := c.do(ctx, http.MethodPut, idPath("/merchants/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMerchant(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/merchants/%d", id), nil, nil, nil)
}

// ── Comisiones ────────────────────────────────────────────────────────────────

// UpdateCommission PUT /merchant-commissions/{id}.
func (c *Client) UpdateCommission(ctx context.Context, id int64, in commission.Update) (*entity.Commission, error) {
	var out entity.Commission
	if err := c.do(ctx, http.MethodPut, idPath("/merchant-commissions/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommissionHistories GET /merchant-commissions/{id}/histories.
func (c *Client) CommissionHistories(ctx context.Context, id int64) ([]entity.CommissionHistory, error) {
	raw, err := c.raw(ctx, http.MethodGet, idPath("/merchant-commissions/%d/histories", id), nil, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.CommissionHistory
	if err := decodeSlice(raw, &out, "histories"); err != nil {
		return nil, fmt.Errorf("webadmin: historial de comisión %d: %w", id, err)
	}
	return out, nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

func (c *Client) CancelPayment(ctx context.Context, id int64, in dto.CancelPaymentRequest) (*entity.Payment, error) {
	var out entity.Payment
	if err := c.do(ctx, http.MethodPost, idPath("/payments/%d/cancel", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterTerminal(ctx context.Context, id int64, in dto.RegisterTerminalRequest) (*entity.Payment, error) {
	var out entity.Payment
	if err := c.do(ctx, http.MethodPost, idPath("/payments/%d/register-terminal", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Receipt(ctx context.Context, id int64) (*entity.Receipt, error) {
	var out entity.Receipt
	if err := c.do(ctx, http.MethodGet, idPath("/payments/%d/receipt", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Liquidaciones ─────────────────────────────────────────────────────────────

// Statistics GET /settlements/statistics: bosque de nodos jerárquicos.
func (c *Client) Statistics(ctx context.Context, q ports.Query) ([]*entity.StatNode, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/settlements/statistics", q, nil)
	if err != nil {
		return nil, err
	}
	var out []*entity.StatNode
	if err := decodeSlice(raw, &out, "statistics", "children"); err != nil {
		// Un único nodo raíz también es válido.
		var single entity.StatNode
		if json.Unmarshal(raw, &single) == nil && single.CompanyID != 0 {
			return []*entity.StatNode{&single}, nil
		}
		return nil, fmt.Errorf("webadmin: estadísticas: %w", err)
	}
	return out, nil
}

func (c *Client) BranchCommission(ctx context.Context, q ports.Query) ([]entity.BranchCommission, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/settlements/statistics/branch-commission", q, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.BranchCommission
	if err := decodeSlice(raw, &out, "branches", "branchCommissions"); err != nil {
		return nil, fmt.Errorf("webadmin: comisiones por sucursal: %w", err)
	}
	return out, nil
}

func (c *Client) SettlementAmounts(ctx context.Context, q ports.Query) ([]entity.SettlementAmount, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/settlements/amounts", q, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.SettlementAmount
	if err := decodeSlice(raw, &out, "amounts", "settlements"); err != nil {
		return nil, fmt.Errorf("webadmin: montos de liquidación: %w", err)
	}
	return out, nil
}

// ── Terminales ────────────────────────────────────────────────────────────────

func (c *Client) GetTerminal(ctx context.Context, id int64) (*entity.Terminal, error) {
	var out entity.Terminal
	if err := c.do(ctx, http.MethodGet, idPath("/merchant-terminals/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTerminal(ctx context.Context, in dto.TerminalRequest) (*entity.Terminal, error) {
	var out entity.Terminal
	if err := c.do(ctx, http.MethodPost, "/merchant-terminals", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTerminal(ctx context.Context, id int64, in dto.TerminalRequest) (*entity.Terminal, error) {
	var out entity.Terminal
	if err := c.do(ctx, http.MethodPut, idPath("/merchant-terminals/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTerminal(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/merchant-terminals/%d", id), nil, nil, nil)
}

// CheckTerminalDuplicate GET /merchant-terminals/check-duplicate?terminalCode=.
func (c *Client) CheckTerminalDuplicate(ctx context.Context, terminalCode string) (bool, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/merchant-terminals/check-duplicate", ports.Query{"terminalCode": terminalCode}, nil)
	if err != nil {
		return false, err
	}
	return decodeFlag(raw, "duplicate", "isDuplicate", "exists")
}

// ── Centros ───────────────────────────────────────────────────────────────────

func (c *Client) Centers(ctx context.Context) ([]entity.Center, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/centers", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []entity.Center
	if err := decodeSlice(raw, &out, "centers"); err != nil {
		return nil, fmt.Errorf("webadmin: centros: %w", err)
	}
	return out, nil
}

// CenterDetail GET /centers/detail?centerId=.
func (c *Client) CenterDetail(ctx context.Context, centerID int64) (*entity.Center, error) {
	var out entity.Center
	q := ports.Query{"centerId": strconv.FormatInt(centerID, 10)}
	if err := c.do(ctx, http.MethodGet, "/centers/detail", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCenter(ctx context.Context, in dto.CenterRequest) (*entity.Center, error) {
	var out entity.Center
	if err := c.do(ctx, http.MethodPost, "/centers", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCenter(ctx context.Context, id int64, in dto.CenterRequest) (*entity.Center, error) {
	var out entity.Center
	if err := c.do(ctx, http.MethodPut, idPath("/centers/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── TOTP ──────────────────────────────────────────────────────────────────────

type centerBody struct {
	CenterID int64 `json:"centerId"`
}

func (c *Client) TotpStatus(ctx context.Context, centerID int64) (*entity.TotpStatus, error) {
	var out entity.TotpStatus
	q := ports.Query{"centerId": strconv.FormatInt(centerID, 10)}
	if err := c.do(ctx, http.MethodGet, "/center-totp/status", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TotpSetup(ctx context.Context, centerID int64) (*entity.TotpSetup, error) {
	var out entity.TotpSetup
	if err := c.do(ctx, http.MethodPost, "/center-totp/setup", nil, centerBody{CenterID: centerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TotpEnable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	var out entity.TotpStatus
	if err := c.do(ctx, http.MethodPost, "/center-totp/enable", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TotpDisable(ctx context.Context, in dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	var out entity.TotpStatus
	if err := c.do(ctx, http.MethodPost, "/center-totp/disable", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TotpVerify(ctx context.Context, in dto.TotpCodeRequest) (bool, error) {
	raw, err := c.raw(ctx, http.MethodPost, "/center-totp/verify", nil, in)
	if err != nil {
		return false, err
	}
	return decodeFlag(raw, "valid", "verified")
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// CheckLoginIDDuplicate GET /users/check-duplicate?loginId=.
func (c *Client) CheckLoginIDDuplicate(ctx context.Context, loginID string) (bool, error) {
	raw, err := c.raw(ctx, http.MethodGet, "/users/check-duplicate", ports.Query{"loginId": loginID}, nil)
	if err != nil {
		return false, err
	}
	return decodeFlag(raw, "duplicate", "isDuplicate", "exists")
}
