package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/settlement"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// Formatos de exportación del reporte de estadísticas.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// Report archivo generado listo para descargar.
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}

// SettlementUseCase reportes agregados de liquidación.
type SettlementUseCase struct {
	api       ports.SettlementAPI
	renderers map[string]ports.StatisticsRenderer
	now       func() time.Time
	log       *logger.Logger
}

// NewSettlementUseCase construye el caso de uso. renderers se indexan por su extensión.
func NewSettlementUseCase(api ports.SettlementAPI, log *logger.Logger, renderers ...ports.StatisticsRenderer) *SettlementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &SettlementUseCase{
		api:       api,
		renderers: make(map[string]ports.StatisticsRenderer, len(renderers)),
		now:       time.Now,
		log:       log.Component("settlement"),
	}
	for _, r := range renderers {
		uc.renderers[r.Extension()] = r
	}
	return uc
}

// Statistics árbol de estadísticas aplanado en filas (pre-orden) más la fila de totales.
func (uc *SettlementUseCase) Statistics(ctx context.Context, ws *session.Workspace, in dto.StatisticsQuery) (*dto.StatisticsResponse, error) {
	roots, err := uc.tree(ctx, ws, in)
	if err != nil {
		return nil, err
	}
	rows := settlement.FlattenAll(roots)
	out := &dto.StatisticsResponse{Rows: make([]dto.StatisticsRow, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, toStatisticsRow(r))
	}
	out.Total = toStatisticsRow(settlement.Row{Kind: settlement.RowSummary, CompanyName: "합계", Summary: settlement.Totals(roots)})
	return out, nil
}

// Export genera el reporte de estadísticas en el formato pedido.
func (uc *SettlementUseCase) Export(ctx context.Context, ws *session.Workspace, in dto.StatisticsQuery, format string) (*Report, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, format)
	}
	roots, err := uc.tree(ctx, ws, in)
	if err != nil {
		return nil, err
	}
	st, _ := ws.Store.State()
	report := ports.StatisticsReport{
		Title:       "정산 통계",
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		GeneratedBy: st.Claims.Name,
		GeneratedAt: uc.now(),
		Rows:        settlement.FlattenAll(roots),
		Total:       settlement.Totals(roots),
	}
	body, err := r.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exportar estadísticas %s: %w", format, err)
	}
	uc.log.Info().Str("format", format).Int("rows", len(report.Rows)).Str("login_id", ws.LoginID).Msg("reporte generado")
	return &Report{
		Filename:    fmt.Sprintf("statistics_%s.%s", uc.now().Format("20060102_150405"), r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}

// BranchCommission comisiones por sucursal.
func (uc *SettlementUseCase) BranchCommission(ctx context.Context, ws *session.Workspace, in dto.StatisticsQuery) ([]entity.BranchCommission, error) {
	q, err := uc.query(ws, in)
	if err != nil {
		return nil, err
	}
	list, err := uc.api.BranchCommission(ctx, q)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.BranchCommission{}
	}
	return list, nil
}

// Amounts montos de liquidación por organización.
func (uc *SettlementUseCase) Amounts(ctx context.Context, ws *session.Workspace, in dto.StatisticsQuery) ([]entity.SettlementAmount, error) {
	q, err := uc.query(ws, in)
	if err != nil {
		return nil, err
	}
	list, err := uc.api.SettlementAmounts(ctx, q)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.SettlementAmount{}
	}
	return list, nil
}

func (uc *SettlementUseCase) tree(ctx context.Context, ws *session.Workspace, in dto.StatisticsQuery) ([]*entity.StatNode, error) {
	q, err := uc.query(ws, in)
	if err != nil {
		return nil, err
	}
	return uc.api.Statistics(ctx, q)
}

// query combina los filtros pedidos con los de sesión; los de la petición tienen prioridad.
func (uc *SettlementUseCase) query(ws *session.Workspace, in dto.StatisticsQuery) (ports.Query, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	q := ports.Query{}
	for k, v := range ws.Store.Filters() {
		q[k] = v
	}
	if in.StartDate != "" {
		q["startDate"] = in.StartDate
	}
	if in.EndDate != "" {
		q["endDate"] = in.EndDate
	}
	if in.CompanyID > 0 {
		q["companyId"] = strconv.FormatInt(in.CompanyID, 10)
	}
	if in.PaymentPurpose != "" {
		q["paymentPurpose"] = in.PaymentPurpose
	}
	return q, nil
}

func toStatisticsRow(r settlement.Row) dto.StatisticsRow {
	s := r.Summary
	out := dto.StatisticsRow{
		Kind:                         string(r.Kind),
		Depth:                        r.Depth,
		CompanyID:                    r.CompanyID,
		CompanyName:                  r.CompanyName,
		Level:                        r.Level,
		LevelName:                    r.LevelName,
		TransactionCount:             s.TransactionCount,
		TransactionAmount:            s.TransactionAmount.StringFixed(0),
		CancelCount:                  s.CancelCount,
		CancelAmount:                 s.CancelAmount.StringFixed(0),
		MerchantSettlementAmount:     s.MerchantSettlementAmount.StringFixed(0),
		HeadquartersSettlementAmount: s.HeadquartersSettlementAmount.StringFixed(0),
		BranchSettlementAmount:       s.BranchSettlementAmount.StringFixed(0),
		DistributorSettlementAmount:  s.DistributorSettlementAmount.StringFixed(0),
		AgentSettlementAmount:        s.AgentSettlementAmount.StringFixed(0),
		DepositAmount:                r.DepositAmount.StringFixed(0),
		BankName:                     r.BankName,
		AccountNumber:                r.AccountNumber,
		AccountHolder:                r.AccountHolder,
	}
	if r.CommissionRate != nil {
		out.CommissionRate = r.CommissionRate.StringFixed(2)
	}
	return out
}
