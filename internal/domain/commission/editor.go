package commission

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
)

// Field campo editable de una fila de comisión.
type Field string

const (
	FieldBranch      Field = "branch"
	FieldDistributor Field = "distributor"
	FieldAgent       Field = "agent"
)

// ErrNegativeHeadquarters se devuelve cuando la suma de tasas hijas supera la del comercio.
var ErrNegativeHeadquarters = errors.New("comisión de casa matriz negativa")

// NegativeHeadquartersError detalle del bloqueo de guardado.
type NegativeHeadquartersError struct {
	Merchant     decimal.Decimal
	Headquarters decimal.Decimal
}

func (e *NegativeHeadquartersError) Error() string {
	return fmt.Sprintf("본사 수수료가 %s%%가 되어 저장할 수 없습니다. 지사·총판·대리점 수수료 합계는 가맹점 수수료 %s%%를 넘을 수 없습니다.",
		e.Headquarters.StringFixed(2), e.Merchant.StringFixed(2))
}

func (e *NegativeHeadquartersError) Is(target error) bool {
	return target == ErrNegativeHeadquarters
}

// Fields texto actual de los tres campos editables.
type Fields struct {
	Branch      string `json:"branch"`
	Distributor string `json:"distributor"`
	Agent       string `json:"agent"`
}

// Update valores numéricos que se envían al API al guardar.
type Update struct {
	BranchCommission       decimal.Decimal `json:"branchCommission"`
	DistributorCommission  decimal.Decimal `json:"distributorCommission"`
	AgentCommission        decimal.Decimal `json:"agentCommission"`
	HeadquartersCommission decimal.Decimal `json:"headquartersCommission"`
}

// Row estado local de una fila del editor. Es un valor: cada transición devuelve una copia.
type Row struct {
	ID             int64           `json:"id"`
	MerchantID     int64           `json:"merchantId"`
	MerchantName   string          `json:"merchantName"`
	PaymentPurpose string          `json:"paymentPurpose"`
	Merchant       decimal.Decimal `json:"merchantCommission"`
	Fields         Fields          `json:"fields"`
	Dirty          bool            `json:"dirty"`
	Saving         bool            `json:"saving"`
	Err            string          `json:"error,omitempty"`
}

// NewRow construye la fila a partir del recurso del API.
func NewRow(c entity.Commission) Row {
	return Row{
		ID:             c.ID,
		MerchantID:     c.MerchantID,
		MerchantName:   c.MerchantName,
		PaymentPurpose: c.PaymentPurpose,
		Merchant:       c.MerchantCommission,
		Fields: Fields{
			Branch:      FormatRate(c.BranchCommission),
			Distributor: FormatRate(c.DistributorCommission),
			Agent:       FormatRate(c.AgentCommission),
		},
	}
}

// Edit aplica una pulsación sobre un campo. Un valor que no pasa el filtro deja la fila igual.
func (r Row) Edit(field Field, value string) (Row, error) {
	if r.Saving {
		return r, domain.ErrRowBusy
	}
	next := r
	switch field {
	case FieldBranch:
		next.Fields.Branch = FilterKeystroke(r.Fields.Branch, value)
	case FieldDistributor:
		next.Fields.Distributor = FilterKeystroke(r.Fields.Distributor, value)
	case FieldAgent:
		next.Fields.Agent = FilterKeystroke(r.Fields.Agent, value)
	default:
		return r, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
	}
	if next.Fields != r.Fields {
		next.Dirty = true
		next.Err = ""
	}
	return next, nil
}

func (r Row) rates() (branch, distributor, agent decimal.Decimal, err error) {
	if branch, err = ParseRate(r.Fields.Branch); err != nil {
		return
	}
	if distributor, err = ParseRate(r.Fields.Distributor); err != nil {
		return
	}
	agent, err = ParseRate(r.Fields.Agent)
	return
}

// Headquarters devuelve la comisión de casa matriz derivada de los campos actuales.
func (r Row) Headquarters() (decimal.Decimal, error) {
	b, d, a, err := r.rates()
	if err != nil {
		return decimal.Zero, err
	}
	return Headquarters(r.Merchant, b, d, a), nil
}

// BeginSave valida la fila y la marca como guardando. Si la comisión de casa matriz
// queda negativa la fila no cambia de estado y se devuelve *NegativeHeadquartersError.
func (r Row) BeginSave() (Row, Update, error) {
	if r.Saving {
		return r, Update{}, domain.ErrRowBusy
	}
	b, d, a, err := r.rates()
	if err != nil {
		return r, Update{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	hq := Headquarters(r.Merchant, b, d, a)
	if hq.IsNegative() {
		return r, Update{}, &NegativeHeadquartersError{Merchant: r.Merchant, Headquarters: hq}
	}
	next := r
	next.Saving = true
	next.Err = ""
	return next, Update{
		BranchCommission:       b,
		DistributorCommission:  d,
		AgentCommission:        a,
		HeadquartersCommission: hq,
	}, nil
}

// SaveSucceeded refleja la respuesta del API y limpia dirty/saving.
func (r Row) SaveSucceeded(saved entity.Commission) Row {
	next := NewRow(saved)
	if saved.ID == 0 {
		next = r
		next.Dirty = false
	}
	next.Saving = false
	next.Err = ""
	return next
}

// SaveFailed conserva lo editado (sigue dirty) y registra el mensaje de error.
func (r Row) SaveFailed(err error) Row {
	next := r
	next.Saving = false
	if err != nil {
		next.Err = err.Error()
	}
	return next
}

// Board filas del editor indexadas por id, en el orden en que llegaron del API.
// Seguro para uso concurrente: cada operación reemplaza el valor de la fila completo.
type Board struct {
	mu    sync.RWMutex
	order []int64
	rows  map[int64]Row
}

// NewBoard crea un tablero vacío.
func NewBoard() *Board {
	return &Board{rows: make(map[int64]Row)}
}

// Load reemplaza las filas con la lista recargada del servidor.
// Una fila con edición pendiente conserva su estado si sigue en la lista; una fila
// guardándose se conserva siempre para que su guardado termine sobre ella.
func (b *Board) Load(list []entity.Commission) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.rows
	b.order = make([]int64, 0, len(list))
	b.rows = make(map[int64]Row, len(list))
	for _, c := range list {
		if _, seen := b.rows[c.ID]; seen {
			continue
		}
		b.order = append(b.order, c.ID)
		if old, ok := prev[c.ID]; ok && (old.Saving || old.Dirty) {
			b.rows[c.ID] = old
			continue
		}
		b.rows[c.ID] = NewRow(c)
	}
	for id, old := range prev {
		if _, ok := b.rows[id]; !ok && old.Saving {
			b.rows[id] = old
		}
	}
}

// Rows devuelve una copia de las filas en orden.
func (b *Board) Rows() []Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Row, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.rows[id])
	}
	return out
}

// Get devuelve la fila por id.
func (b *Board) Get(id int64) (Row, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.rows[id]
	if !ok {
		return Row{}, domain.ErrRowNotFound
	}
	return r, nil
}

func (b *Board) apply(id int64, fn func(Row) (Row, error)) (Row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.rows[id]
	if !ok {
		return Row{}, domain.ErrRowNotFound
	}
	next, err := fn(r)
	b.rows[id] = next
	return next, err
}

// Edit aplica Row.Edit sobre la fila id.
func (b *Board) Edit(id int64, field Field, value string) (Row, error) {
	return b.apply(id, func(r Row) (Row, error) { return r.Edit(field, value) })
}

// BeginSave aplica Row.BeginSave sobre la fila id.
func (b *Board) BeginSave(id int64) (Row, Update, error) {
	var upd Update
	row, err := b.apply(id, func(r Row) (Row, error) {
		next, u, err := r.BeginSave()
		upd = u
		return next, err
	})
	return row, upd, err
}

// SaveSucceeded aplica Row.SaveSucceeded sobre la fila id.
func (b *Board) SaveSucceeded(id int64, saved entity.Commission) (Row, error) {
	return b.apply(id, func(r Row) (Row, error) { return r.SaveSucceeded(saved), nil })
}

// SaveFailed aplica Row.SaveFailed sobre la fila id.
func (b *Board) SaveFailed(id int64, cause error) (Row, error) {
	return b.apply(id, func(r Row) (Row, error) { return r.SaveFailed(cause), nil })
}
