// Package settlement aplana el árbol de estadísticas jerárquicas de liquidación
// (지사 → 총판 → 대리점) en filas de tabla.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// RowKind etiqueta del tipo de fila.
type RowKind string

const (
	RowSummary RowKind = "summary" // agregado de la organización
	RowRate    RowKind = "rate"    // un tramo de tasa de comisión
)

// Row fila aplanada. Depth es explícito: la capa de presentación decide la sangría.
type Row struct {
	Kind           RowKind            `json:"kind"`
	Depth          int                `json:"depth"`
	CompanyID      int64              `json:"companyId"`
	CompanyName    string             `json:"companyName"`
	Level          int                `json:"level"`
	LevelName      string             `json:"levelName"`
	CommissionRate *decimal.Decimal   `json:"commissionRate,omitempty"`
	Summary        entity.StatSummary `json:"summary"`
	DepositAmount  decimal.Decimal    `json:"depositAmount"`
	BankName       string             `json:"bankName,omitempty"`
	AccountNumber  string             `json:"accountNumber,omitempty"`
	AccountHolder  string             `json:"accountHolder,omitempty"`
}

// DepositAmount monto a depositar según el nivel:
// 1 → branchSettlementAmount, 2 → distributorSettlementAmount, 3 → agentSettlementAmount.
// Cualquier otro nivel vale 0.
func DepositAmount(level int, s entity.StatSummary) decimal.Decimal {
	switch level {
	case entity.LevelBranch:
		return s.BranchSettlementAmount
	case entity.LevelDistributor:
		return s.DistributorSettlementAmount
	case entity.LevelAgent:
		return s.AgentSettlementAmount
	default:
		return decimal.Zero
	}
}

// Flatten recorre el nodo en pre-orden: fila resumen, una fila por tasa distinta
// de summaryArr y luego los hijos en orden. No modifica el árbol.
func Flatten(node *entity.StatNode, depth int) []Row {
	if node == nil {
		return nil
	}
	var out []Row
	appendNode(&out, node, depth)
	return out
}

// FlattenAll aplana un bosque de raíces en orden.
func FlattenAll(roots []*entity.StatNode) []Row {
	var out []Row
	for _, n := range roots {
		if n != nil {
			appendNode(&out, n, 0)
		}
	}
	return out
}

func appendNode(out *[]Row, node *entity.StatNode, depth int) {
	base := Row{
		Depth:       depth,
		CompanyID:   node.CompanyID,
		CompanyName: node.CompanyName,
		Level:       node.Level,
		LevelName:   entity.LevelName(node.Level),
	}
	if node.BankInfo != nil {
		base.BankName = node.BankInfo.BankName
		base.AccountNumber = node.BankInfo.AccountNumber
		base.AccountHolder = node.BankInfo.AccountHolder
	}

	summary := base
	summary.Kind = RowSummary
	summary.Summary = node.Summary
	summary.DepositAmount = DepositAmount(node.Level, node.Summary)
	*out = append(*out, summary)

	for _, rs := range distinctRates(node.SummaryArr) {
		rate := rs.CommissionRate
		r := base
		r.Kind = RowRate
		r.CommissionRate = &rate
		r.Summary = rs.StatSummary
		r.DepositAmount = DepositAmount(node.Level, rs.StatSummary)
		*out = append(*out, r)
	}

	for _, child := range node.Children {
		if child != nil {
			appendNode(out, child, depth+1)
		}
	}
}

// distinctRates agrupa summaryArr por tasa en orden de primera aparición, sumando repetidos.
func distinctRates(in []entity.RateSummary) []entity.RateSummary {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.RateSummary, 0, len(in))
	index := make(map[string]int, len(in))
	for _, rs := range in {
		key := rs.CommissionRate.Round(2).StringFixed(2)
		if i, ok := index[key]; ok {
			out[i].StatSummary = out[i].StatSummary.Add(rs.StatSummary)
			continue
		}
		index[key] = len(out)
		out = append(out, rs)
	}
	return out
}

// Totals suma los resúmenes de las raíces (fila de totales al pie de la tabla).
func Totals(roots []*entity.StatNode) entity.StatSummary {
	var total entity.StatSummary
	for _, n := range roots {
		if n != nil {
			total = total.Add(n.Summary)
		}
	}
	return total
}
