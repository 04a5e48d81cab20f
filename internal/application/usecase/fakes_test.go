package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/pkg/jwt"
)

// fakeAPI implementa los puertos usados por los casos de uso con respuestas en memoria.
type fakeAPI struct {
	mu sync.Mutex

	lists     map[string]*ports.RawPage
	listCalls []ports.Query
	listErr   error

	updates   []commission.Update
	updateErr error

	duplicateCodes map[string]bool
	terminals      map[int64]*entity.Terminal
	created        []dto.TerminalRequest

	stats      []*entity.StatNode
	statsQuery ports.Query

	totpSetup *entity.TotpSetup

	companies []dto.CompanyRequest
	loginIDs  map[string]bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		lists:          map[string]*ports.RawPage{},
		duplicateCodes: map[string]bool{},
		terminals:      map[int64]*entity.Terminal{},
		loginIDs:       map[string]bool{},
	}
}

func (f *fakeAPI) List(_ context.Context, path, _ string, q ports.Query) (*ports.RawPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if p, ok := f.lists[path]; ok {
		return p, nil
	}
	return &ports.RawPage{}, nil
}

func (f *fakeAPI) setList(t *testing.T, path string, items ...interface{}) {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		require.NoError(t, err)
		raw = append(raw, b)
	}
	f.mu.Lock()
	f.lists[path] = &ports.RawPage{Items: raw, TotalElements: int64(len(raw)), TotalPages: 1}
	f.mu.Unlock()
}

func (f *fakeAPI) UpdateCommission(_ context.Context, id int64, in commission.Update) (*entity.Commission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &entity.Commission{
		ID:                     id,
		BranchCommission:       in.BranchCommission,
		DistributorCommission:  in.DistributorCommission,
		AgentCommission:        in.AgentCommission,
		HeadquartersCommission: in.HeadquartersCommission,
	}, nil
}

func (f *fakeAPI) CommissionHistories(context.Context, int64) ([]entity.CommissionHistory, error) {
	return nil, nil
}

func (f *fakeAPI) GetTerminal(_ context.Context, id int64) (*entity.Terminal, error) {
	return f.terminals[id], nil
}

func (f *fakeAPI) CreateTerminal(_ context.Context, in dto.TerminalRequest) (*entity.Terminal, error) {
	f.created = append(f.created, in)
	return &entity.Terminal{ID: 1, TerminalCode: in.TerminalCode, MerchantID: in.MerchantID, PGCode: in.PGCode}, nil
}

func (f *fakeAPI) UpdateTerminal(_ context.Context, id int64, in dto.TerminalRequest) (*entity.Terminal, error) {
	return &entity.Terminal{ID: id, TerminalCode: in.TerminalCode}, nil
}

func (f *fakeAPI) DeleteTerminal(context.Context, int64) error { return nil }

func (f *fakeAPI) CheckTerminalDuplicate(_ context.Context, code string) (bool, error) {
	return f.duplicateCodes[code], nil
}

func (f *fakeAPI) Statistics(_ context.Context, q ports.Query) ([]*entity.StatNode, error) {
	f.statsQuery = q
	return f.stats, nil
}

func (f *fakeAPI) BranchCommission(context.Context, ports.Query) ([]entity.BranchCommission, error) {
	return nil, nil
}

func (f *fakeAPI) SettlementAmounts(context.Context, ports.Query) ([]entity.SettlementAmount, error) {
	return nil, nil
}

func (f *fakeAPI) TotpStatus(context.Context, int64) (*entity.TotpStatus, error) {
	return &entity.TotpStatus{Enabled: true}, nil
}

func (f *fakeAPI) TotpSetup(context.Context, int64) (*entity.TotpSetup, error) {
	return f.totpSetup, nil
}

func (f *fakeAPI) TotpEnable(context.Context, dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	return &entity.TotpStatus{Enabled: true, Configured: true}, nil
}

func (f *fakeAPI) TotpDisable(context.Context, dto.TotpCodeRequest) (*entity.TotpStatus, error) {
	return &entity.TotpStatus{}, nil
}

func (f *fakeAPI) TotpVerify(_ context.Context, in dto.TotpCodeRequest) (bool, error) {
	return in.Code == "123456", nil
}

func (f *fakeAPI) GetCompany(context.Context, int64) (*entity.Company, error) { return nil, nil }

func (f *fakeAPI) CreateCompany(_ context.Context, in dto.CompanyRequest) (*entity.Company, error) {
	f.companies = append(f.companies, in)
	return &entity.Company{ID: 99, Level: in.Level, Name: in.Name}, nil
}

func (f *fakeAPI) UpdateCompany(_ context.Context, id int64, in dto.CompanyRequest) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: in.Name}, nil
}

func (f *fakeAPI) CheckLoginIDDuplicate(_ context.Context, loginID string) (bool, error) {
	return f.loginIDs[loginID], nil
}

type fakeQR struct{ content string }

func (q *fakeQR) PNG(content string, _ int) ([]byte, error) {
	q.content = content
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

type fakeRenderer struct {
	ext    string
	report ports.StatisticsReport
}

func (r *fakeRenderer) Render(_ context.Context, rep ports.StatisticsReport) ([]byte, error) {
	r.report = rep
	return []byte("report"), nil
}
func (r *fakeRenderer) ContentType() string { return "application/octet-stream" }
func (r *fakeRenderer) Extension() string   { return r.ext }

func fixedNow() time.Time { return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC) }

// workspace abre una sesión sobre el fake y devuelve su Workspace.
func workspace(t *testing.T, api *fakeAPI) *session.Workspace {
	t.Helper()
	m := session.NewManager(api, nil, nil, session.WithClock(fixedNow))
	ws, err := m.Open(context.Background(), "tok", &jwt.Claims{LoginID: "hq", Name: "본사관리자", CenterID: 2})
	require.NoError(t, err)
	return ws
}
