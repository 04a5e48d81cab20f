package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/listing"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/application/view"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// CommissionUseCase edición de comisiones por fila sobre el tablero del usuario.
type CommissionUseCase struct {
	api ports.CommissionAPI
	log *logger.Logger
}

// NewCommissionUseCase construye el caso de uso.
func NewCommissionUseCase(api ports.CommissionAPI, log *logger.Logger) *CommissionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CommissionUseCase{api: api, log: log.Component("commission")}
}

// Rows filas actuales del tablero con la comisión de casa matriz calculada.
func (uc *CommissionUseCase) Rows(ws *session.Workspace) []dto.CommissionRowResponse {
	rows := ws.Board.Rows()
	out := make([]dto.CommissionRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCommissionRow(r))
	}
	return out
}

// Edit aplica una pulsación sobre un campo de la fila.
func (uc *CommissionUseCase) Edit(ws *session.Workspace, id int64, in dto.CommissionEditRequest) (*dto.CommissionRowResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	row, err := ws.Board.Edit(id, commission.Field(in.Field), in.Value)
	if err != nil {
		return nil, err
	}
	res := toCommissionRow(row)
	return &res, nil
}

// Save valida la fila (casa matriz ≥ 0), envía PUT /merchant-commissions/{id} y, si tiene éxito,
// recarga la vista de comisiones. Un fallo deja la fila editada con el mensaje de error.
func (uc *CommissionUseCase) Save(ctx context.Context, ws *session.Workspace, id int64) (*dto.CommissionRowResponse, error) {
	_, upd, err := ws.Board.BeginSave(id)
	if err != nil {
		return nil, err
	}

	saved, err := uc.api.UpdateCommission(ctx, id, upd)
	if err != nil {
		row, _ := ws.Board.SaveFailed(id, err)
		res := toCommissionRow(row)
		return &res, fmt.Errorf("guardar comisión %d: %w", id, err)
	}
	if saved == nil {
		saved = &entity.Commission{}
	}
	row, err := ws.Board.SaveSucceeded(id, *saved)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("commission_id", id).Str("login_id", ws.LoginID).
		Str("headquarters", upd.HeadquartersCommission.StringFixed(2)).Msg("comisión guardada")

	if v, verr := ws.Views.Get(view.Commissions); verr == nil {
		if _, rerr := v.Reload(ctx); rerr != nil && !errors.Is(rerr, listing.ErrSuperseded) {
			uc.log.Warn().Err(rerr).Msg("recarga de comisiones falló")
		}
		if reloaded, gerr := ws.Board.Get(id); gerr == nil {
			row = reloaded
		}
	}
	res := toCommissionRow(row)
	return &res, nil
}

// Histories historial de cambios de una comisión.
func (uc *CommissionUseCase) Histories(ctx context.Context, id int64) ([]entity.CommissionHistory, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id", domain.ErrInvalidInput)
	}
	list, err := uc.api.CommissionHistories(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.CommissionHistory{}
	}
	return list, nil
}

func toCommissionRow(r commission.Row) dto.CommissionRowResponse {
	res := dto.CommissionRowResponse{
		ID:                    r.ID,
		MerchantID:            r.MerchantID,
		MerchantName:          r.MerchantName,
		PaymentPurpose:        r.PaymentPurpose,
		MerchantCommission:    commission.FormatRate(r.Merchant),
		BranchCommission:      r.Fields.Branch,
		DistributorCommission: r.Fields.Distributor,
		AgentCommission:       r.Fields.Agent,
		Dirty:                 r.Dirty,
		Saving:                r.Saving,
		Error:                 r.Err,
	}
	if hq, err := r.Headquarters(); err == nil {
		res.HeadquartersCommission = commission.FormatRate(hq)
		res.HeadquartersNegative = hq.IsNegative()
	}
	return res
}
