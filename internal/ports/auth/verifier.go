package auth

import "context"

// Verifier verifica el bearer token de un request y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// IdentityProvider valida una credencial del proveedor de identidad externo
// (el id_token de Google que manda el frontend tras el sign-in).
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, token string) (Claims, error)
}

// Issuer emite el bearer token propio del backend para una identidad ya verificada.
type Issuer interface {
	Issue(claims Claims) (string, error)
}
