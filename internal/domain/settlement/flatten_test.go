package settlement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/settlement"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func node(id int64, name string, level int, rates []string, children ...*entity.StatNode) *entity.StatNode {
	n := &entity.StatNode{
		CompanyID:   id,
		CompanyName: name,
		Level:       level,
		Summary: entity.StatSummary{
			TransactionCount:            int64(len(rates)),
			TransactionAmount:           dec("1000"),
			BranchSettlementAmount:      dec("10"),
			DistributorSettlementAmount: dec("20"),
			AgentSettlementAmount:       dec("30"),
		},
		Children: children,
	}
	for _, r := range rates {
		n.SummaryArr = append(n.SummaryArr, entity.RateSummary{
			CommissionRate: dec(r),
			StatSummary:    entity.StatSummary{TransactionCount: 1, TransactionAmount: dec("100")},
		})
	}
	return n
}

// label resume una fila como "A" (resumen) o "A@3.00" (tramo de tasa).
func label(r settlement.Row) string {
	if r.Kind == settlement.RowRate {
		return r.CompanyName + "@" + r.CommissionRate.StringFixed(2)
	}
	return r.CompanyName
}

func TestFlatten_PreordenProfundidad(t *testing.T) {
	// A → [B, C], B → [D]
	d := node(4, "D", entity.LevelAgent, []string{"1"})
	b := node(2, "B", entity.LevelDistributor, []string{"2", "2.5"}, d)
	c := node(3, "C", entity.LevelDistributor, []string{"2"})
	a := node(1, "A", entity.LevelBranch, []string{"3"}, b, c)

	rows := settlement.Flatten(a, 0)

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, label(r))
	}
	assert.Equal(t, []string{
		"A", "A@3.00",
		"B", "B@2.00", "B@2.50",
		"D", "D@1.00",
		"C", "C@2.00",
	}, got)

	depths := map[string]int{}
	for _, r := range rows {
		if r.Kind == settlement.RowSummary {
			depths[r.CompanyName] = r.Depth
		}
	}
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 2, "C": 1}, depths)
}

func TestFlatten_AgrupaTasasRepetidas(t *testing.T) {
	n := node(1, "A", entity.LevelBranch, []string{"3", "2", "3.00"})

	rows := settlement.Flatten(n, 0)
	require.Len(t, rows, 3, "resumen + 2 tasas distintas")
	assert.Equal(t, "A@3.00", label(rows[1]))
	assert.Equal(t, int64(2), rows[1].Summary.TransactionCount, "tasas repetidas se suman")
	assert.True(t, rows[1].Summary.TransactionAmount.Equal(dec("200")))
	assert.Equal(t, "A@2.00", label(rows[2]))
}

func TestFlatten_NoModificaElArbol(t *testing.T) {
	n := node(1, "A", entity.LevelBranch, []string{"3", "3"})
	before := len(n.SummaryArr)

	_ = settlement.Flatten(n, 0)
	_ = settlement.Flatten(n, 0)

	assert.Len(t, n.SummaryArr, before)
	assert.Equal(t, int64(1), n.SummaryArr[0].TransactionCount)
}

func TestFlatten_NodoNil(t *testing.T) {
	assert.Empty(t, settlement.Flatten(nil, 0))
}

func TestFlatten_DepositoPorNivelYBanco(t *testing.T) {
	n := node(1, "A", entity.LevelDistributor, nil)
	n.BankInfo = &entity.BankInfo{BankName: "국민은행", AccountNumber: "123-45", AccountHolder: "홍길동"}

	rows := settlement.Flatten(n, 0)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].DepositAmount.Equal(dec("20")))
	assert.Equal(t, "국민은행", rows[0].BankName)
	assert.Equal(t, "총판", rows[0].LevelName)
}

func TestDepositAmount_MapeoPorNivel(t *testing.T) {
	s := entity.StatSummary{
		BranchSettlementAmount:      dec("10"),
		DistributorSettlementAmount: dec("20"),
		AgentSettlementAmount:       dec("30"),
	}
	assert.True(t, settlement.DepositAmount(1, s).Equal(dec("10")))
	assert.True(t, settlement.DepositAmount(2, s).Equal(dec("20")))
	assert.True(t, settlement.DepositAmount(3, s).Equal(dec("30")))
	for _, level := range []int{-1, 0, 4, 99} {
		assert.True(t, settlement.DepositAmount(level, s).IsZero(), "nivel %d", level)
	}
}

func TestFlattenAllYTotales(t *testing.T) {
	roots := []*entity.StatNode{
		node(1, "A", entity.LevelBranch, []string{"3"}),
		nil,
		node(2, "B", entity.LevelBranch, []string{"2"}),
	}
	rows := settlement.FlattenAll(roots)
	require.Len(t, rows, 4)
	assert.Equal(t, "B", label(rows[2]))

	total := settlement.Totals(roots)
	assert.Equal(t, int64(2), total.TransactionCount)
	assert.True(t, total.TransactionAmount.Equal(dec("2000")))
}
