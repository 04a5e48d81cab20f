// Package pdf genera el reporte de estadísticas de liquidación en PDF con Maroto v2.
//
// Layout (A4 horizontal):
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  TÍTULO + periodo                 │  generado por / fecha            │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  구분 | 등급 | 수수료율 | 건수 | 거래금액 | 취소금액 | 입금액         │
//	│  filas aplanadas (sangría por profundidad)                           │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  합계                                                                │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/settlement"
	"github.com/jhoicas/settlement-admin/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 57, Blue: 107}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRate    = &props.Color{Red: 90, Green: 90, Blue: 90}
)

const koreanFamily = "korean"

// labels textos de cabecera. Sin fuente coreana se usan los latinos.
type labels struct {
	company, level, rate, count, amount, cancel, deposit, total, period, by string
}

var (
	koreanLabels = labels{"구분", "등급", "수수료율", "건수", "거래금액", "취소금액", "입금액", "합계", "기간", "작성자"}
	latinLabels  = labels{"Company", "Level", "Rate", "Count", "Amount", "Cancelled", "Deposit", "Total", "Period", "By"}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ ports.StatisticsRenderer = (*StatisticsRenderer)(nil)

// StatisticsRenderer implementa ports.StatisticsRenderer para "pdf".
type StatisticsRenderer struct {
	fontPath string
}

// NewStatisticsRenderer construye el renderer. fontPath es un TTF con glifos coreanos (opcional).
func NewStatisticsRenderer(fontPath string) *StatisticsRenderer {
	return &StatisticsRenderer{fontPath: fontPath}
}

func (g *StatisticsRenderer) ContentType() string { return "application/pdf" }
func (g *StatisticsRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *StatisticsRenderer) Render(_ context.Context, report ports.StatisticsReport) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle(report.Title, true).
		WithAuthor(report.GeneratedBy, true)

	lb := latinLabels
	family := "helvetica"
	if g.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(koreanFamily, fontstyle.Normal, g.fontPath).
			AddUTF8Font(koreanFamily, fontstyle.Bold, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.fontPath, err)
		}
		b = b.WithCustomFonts(fonts)
		lb = koreanLabels
		family = koreanFamily
	}
	b = b.WithDefaultFont(&props.Font{Family: family, Size: 8})

	m := maroto.New(b.Build())

	m.AddRows(headerRow(report, lb))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(lb))
	for _, r := range report.Rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report.Total, lb))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report ports.StatisticsReport, lb labels) core.Row {
	period := fmt.Sprintf("%s: %s ~ %s", lb.period, nonEmpty(report.StartDate, "-"), nonEmpty(report.EndDate, "-"))
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(period, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(lb.by+": "+nonEmpty(report.GeneratedBy, "-"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New(report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow(lb labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(lb.company, 3, align.Left),
		h(lb.level, 1, align.Center),
		h(lb.rate, 1, align.Right),
		h(lb.count, 1, align.Right),
		h(lb.amount, 2, align.Right),
		h(lb.cancel, 2, align.Right),
		h(lb.deposit, 2, align.Right),
	)
}

// detailRow: las filas de tasa van en gris, sin nivel ni depósito.
func detailRow(r settlement.Row) core.Row {
	style := props.Text{Size: 7.5, Top: 1}
	name := indent(r.Depth) + r.CompanyName
	levelName, rate, deposit := r.LevelName, "", money.Won(r.DepositAmount)
	if r.Kind == settlement.RowRate {
		style.Color = colorRate
		name = indent(r.Depth+1) + "└"
		levelName, deposit = "", ""
		if r.CommissionRate != nil {
			rate = money.Rate(*r.CommissionRate)
		}
	} else {
		style.Style = fontstyle.Bold
	}
	cell := func(s string, size int, a align.Type) core.Col {
		p := style
		p.Align = a
		p.Left, p.Right = 1, 1
		return col.New(size).Add(text.New(s, p))
	}
	return row.New(6).Add(
		cell(name, 3, align.Left),
		cell(levelName, 1, align.Center),
		cell(rate, 1, align.Right),
		cell(money.Count(r.Summary.TransactionCount), 1, align.Right),
		cell(money.Won(r.Summary.TransactionAmount), 2, align.Right),
		cell(money.Won(r.Summary.CancelAmount), 2, align.Right),
		cell(deposit, 2, align.Right),
	)
}

func totalRow(total entity.StatSummary, lb labels) core.Row {
	p := func(a align.Type) props.Text {
		return props.Text{Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1}
	}
	return row.New(9).Add(
		col.New(5).Add(text.New(lb.total, p(align.Left))),
		col.New(1).Add(text.New(money.Count(total.TransactionCount), p(align.Right))),
		col.New(2).Add(text.New(money.Won(total.TransactionAmount), p(align.Right))),
		col.New(2).Add(text.New(money.Won(total.CancelAmount), p(align.Right))),
		col.New(2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("    ", depth)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
