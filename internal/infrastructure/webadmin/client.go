// Package webadmin es el adaptador resty del API REST remoto de liquidaciones (/webadmin/api/v1).
package webadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/pkg/logger"
)

// HeaderRequestID cabecera de correlación enviada en cada llamada.
const HeaderRequestID = "X-Request-Id"

var _ ports.WebAdminAPI = (*Client)(nil)

// Options configuración del cliente.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logger.Logger
	// OnUnauthorized se invoca con el token rechazado cuando el API responde 401.
	OnUnauthorized func(token string)
	Debug          bool
}

// Client implementa ports.WebAdminAPI. Sin reintentos.
type Client struct {
	http           *resty.Client
	log            *logger.Logger
	onUnauthorized func(token string)
}

// New crea el cliente con base URL, timeout global y cabeceras comunes.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	c := &Client{
		log:            opts.Logger.Component("webadmin"),
		onUnauthorized: opts.OnUnauthorized,
	}
	c.http = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetDebug(opts.Debug).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	c.http.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader(HeaderRequestID, uuid.NewString())
		if tok := ports.TokenFromContext(r.Context()); tok != "" {
			r.SetAuthToken(tok)
		}
		return nil
	})
	return c
}

// SetOnUnauthorized fija el hook de 401 después de construir el cliente
// (el gestor de sesiones se crea con el cliente ya armado).
func (c *Client) SetOnUnauthorized(fn func(token string)) {
	c.onUnauthorized = fn
}

// do ejecuta la petición y decodifica el cuerpo (sin sobre `data`) en out.
func (c *Client) do(ctx context.Context, method, path string, query ports.Query, body, out interface{}) error {
	raw, err := c.raw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("webadmin: %s %s: decodificar respuesta: %w", method, path, err)
	}
	return nil
}

// raw ejecuta la petición y devuelve el contenido útil de la respuesta.
func (c *Client) raw(ctx context.Context, method, path string, query ports.Query, body interface{}) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("petición fallida")
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("webadmin: %s %s: %w", method, path, err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).Str("request_id", resp.Request.Header.Get(HeaderRequestID)).Msg("webadmin")

	if resp.IsError() {
		return nil, c.apiError(ctx, resp, method, path)
	}
	return unwrapData(resp.Body()), nil
}

// apiError aplica la política de errores de transporte: 401 dispara el hook de sesión,
// 403 solo se registra, el resto se propaga con el mensaje del cuerpo.
func (c *Client) apiError(ctx context.Context, resp *resty.Response, method, path string) error {
	apiErr := &ports.APIError{
		Status:  resp.StatusCode(),
		Message: extractMessage(resp.Body()),
		Method:  method,
		Path:    path,
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		tok := ports.TokenFromContext(ctx)
		c.log.Warn().Str("path", path).Msg("401 del API remoto")
		if tok != "" && c.onUnauthorized != nil {
			c.onUnauthorized(tok)
		}
	case http.StatusForbidden:
		c.log.Warn().Str("method", method).Str("path", path).Str("message", apiErr.Message).Msg("403 del API remoto")
	default:
		c.log.Error().Str("method", method).Str("path", path).Int("status", apiErr.Status).
			Str("message", apiErr.Message).Msg("error del API remoto")
	}
	return apiErr
}

// unwrapData devuelve el campo `data` si el cuerpo viene envuelto ({success, data, message}).
func unwrapData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return trimmed
	}
	if data, ok := env["data"]; ok {
		return data
	}
	return trimmed
}

// extractMessage lee message (o data.message, o error) de un cuerpo de error JSON.
func extractMessage(body []byte) string {
	var e struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	var nested struct {
		Message string `json:"message"`
	}
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &nested) == nil && nested.Message != "" {
		return nested.Message
	}
	var s string
	if len(e.Error) > 0 && json.Unmarshal(e.Error, &s) == nil {
		return s
	}
	return ""
}
