package ports

import "context"

type tokenKey struct{}

// WithToken adjunta el token de sesión al contexto; el adaptador lo envía como Bearer.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext devuelve el token adjunto o "".
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}
