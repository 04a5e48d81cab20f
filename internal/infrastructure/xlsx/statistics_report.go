// Package xlsx exporta el reporte de estadísticas a Excel con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain/settlement"
)

// SheetName hoja única del libro.
const SheetName = "정산통계"

// numFmtThousands formato integrado #,##0.
const numFmtThousands = 3

var headers = []string{
	"구분", "등급", "수수료율(%)", "거래건수", "거래금액", "취소건수", "취소금액",
	"가맹점정산", "본사정산", "지사정산", "총판정산", "대리점정산", "입금액", "은행", "계좌번호", "예금주",
}

var _ ports.StatisticsRenderer = (*StatisticsRenderer)(nil)

// StatisticsRenderer implementa ports.StatisticsRenderer para "xlsx".
type StatisticsRenderer struct{}

func NewStatisticsRenderer() *StatisticsRenderer { return &StatisticsRenderer{} }

func (StatisticsRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (StatisticsRenderer) Extension() string { return "xlsx" }

// Render escribe título, periodo, cabecera, filas (sangría por profundidad) y total.
func (StatisticsRenderer) Render(_ context.Context, report ports.StatisticsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(SheetName, "A1", report.Title)
	_ = f.SetCellStyle(SheetName, "A1", "A1", st.title)
	_ = f.SetCellValue(SheetName, "A2", fmt.Sprintf("기간: %s ~ %s", report.StartDate, report.EndDate))
	_ = f.SetCellValue(SheetName, "A3", fmt.Sprintf("작성자: %s / %s", report.GeneratedBy, report.GeneratedAt.Format("2006-01-02 15:04")))

	const headerRow = 5
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(SheetName, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	_ = f.SetCellStyle(SheetName, first, last, st.header)

	r := headerRow + 1
	for _, row := range report.Rows {
		if err := writeRow(f, st, r, row); err != nil {
			return nil, err
		}
		r++
	}

	_ = f.SetCellValue(SheetName, cellName(1, r), "합계")
	_ = f.SetCellValue(SheetName, cellName(4, r), report.Total.TransactionCount)
	_ = f.SetCellValue(SheetName, cellName(5, r), report.Total.TransactionAmount.InexactFloat64())
	_ = f.SetCellValue(SheetName, cellName(6, r), report.Total.CancelCount)
	_ = f.SetCellValue(SheetName, cellName(7, r), report.Total.CancelAmount.InexactFloat64())
	_ = f.SetCellStyle(SheetName, cellName(1, r), cellName(len(headers), r), st.total)

	_ = f.SetColWidth(SheetName, "A", "A", 32)
	_ = f.SetColWidth(SheetName, "B", "M", 14)
	_ = f.SetColWidth(SheetName, "N", "P", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, st *styles, r int, row settlement.Row) error {
	s := row.Summary
	name := row.CompanyName
	levelName := row.LevelName
	var rate interface{}
	if row.Kind == settlement.RowRate {
		name, levelName = "", ""
		if row.CommissionRate != nil {
			rate = row.CommissionRate.InexactFloat64()
		}
	}
	values := []interface{}{
		name, levelName, rate,
		s.TransactionCount, s.TransactionAmount.InexactFloat64(),
		s.CancelCount, s.CancelAmount.InexactFloat64(),
		s.MerchantSettlementAmount.InexactFloat64(),
		s.HeadquartersSettlementAmount.InexactFloat64(),
		s.BranchSettlementAmount.InexactFloat64(),
		s.DistributorSettlementAmount.InexactFloat64(),
		s.AgentSettlementAmount.InexactFloat64(),
	}
	if row.Kind == settlement.RowSummary {
		values = append(values, row.DepositAmount.InexactFloat64(), row.BankName, row.AccountNumber, row.AccountHolder)
	}
	if err := f.SetSheetRow(SheetName, cellName(1, r), &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", r, err)
	}
	depth := row.Depth
	if row.Kind == settlement.RowRate {
		depth++
	}
	nameStyle, err := st.indent(f, depth)
	if err != nil {
		return err
	}
	_ = f.SetCellStyle(SheetName, cellName(1, r), cellName(1, r), nameStyle)
	_ = f.SetCellStyle(SheetName, cellName(4, r), cellName(13, r), st.number)
	return nil
}

// ── Estilos ───────────────────────────────────────────────────────────────────

type styles struct {
	title, header, number, total int
	byDepth                      map[int]int
}

func newStyles(f *excelize.File) (*styles, error) {
	st := &styles{byDepth: map[int]int{}}
	var err error
	if st.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"21396B"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if st.number, err = f.NewStyle(&excelize.Style{NumFmt: numFmtThousands}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if st.total, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtThousands}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	return st, nil
}

// indent estilo con sangría para la columna de nombre; se crea una vez por profundidad.
func (st *styles) indent(f *excelize.File, depth int) (int, error) {
	if id, ok := st.byDepth[depth]; ok {
		return id, nil
	}
	id, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Indent: depth * 2}})
	if err != nil {
		return 0, fmt.Errorf("xlsx: estilo sangría: %w", err)
	}
	st.byDepth[depth] = id
	return id, nil
}

func cellName(col, row int) string {
	c, _ := excelize.CoordinatesToCellName(col, row)
	return c
}
