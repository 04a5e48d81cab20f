package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/pkg/jwt"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// AuthUseCase login y logout contra el API remoto. Las credenciales se verifican allí;
// aquí solo se decodifica el token para abrir el Workspace del usuario.
type AuthUseCase struct {
	api      ports.AuthAPI
	sessions *session.Manager
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api ports.AuthAPI, sessions *session.Manager, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{api: api, sessions: sessions, log: log.Component("auth")}
}

// Login envía las credenciales, decodifica el token recibido y crea el Workspace.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.LoginID = strings.TrimSpace(in.LoginID)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	res, err := uc.api.Login(ctx, in)
	if err != nil {
		var apiErr *ports.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.Error())
		}
		return nil, err
	}
	if res == nil || res.AccessToken == "" {
		return nil, fmt.Errorf("login: el API no devolvió token")
	}
	claims, err := jwt.Decode(res.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	ws, err := uc.sessions.Open(ctx, res.AccessToken, claims)
	if err != nil {
		return nil, err
	}
	st, _ := ws.Store.State()
	uc.log.Info().Str("login_id", ws.LoginID).Int("level", claims.Level).Msg("login")
	return &dto.LoginResponse{Token: res.AccessToken, Session: session.Response(st)}, nil
}

// Logout avisa al API remoto y destruye el Workspace aunque la llamada falle.
func (uc *AuthUseCase) Logout(ctx context.Context, ws *session.Workspace) error {
	err := uc.api.Logout(ctx)
	if ws != nil {
		uc.sessions.Close(ws.Token)
	}
	if err != nil && !errors.Is(err, domain.ErrSessionExpired) {
		uc.log.Warn().Err(err).Msg("logout remoto falló")
		return err
	}
	return nil
}
