package security

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"agenda-api/internal/models"
)

// ComputeToken derives the bearer token for a credential pair. The token is
// a plain base64 encoding of "username:password" — deliberately reversible,
// so possessing the token is equivalent to possessing the password.
func ComputeToken(op models.Operator) string {
	return base64.StdEncoding.EncodeToString([]byte(op.Username + ":" + op.Password))
}

// Authorizer validates bearer tokens against the current operator.
type Authorizer struct {
	resolver *Resolver
}

func NewAuthorizer(resolver *Resolver) *Authorizer {
	return &Authorizer{resolver: resolver}
}

// Authorize reports whether the request carries the operator's bearer
// token. Every failure path (no operator configured, missing or malformed
// header, token mismatch) fails closed.
func (a *Authorizer) Authorize(r *http.Request) bool {
	op := a.resolver.GetOperator()
	if op == nil {
		return false
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return false
	}

	expected := ComputeToken(*op)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme match is case-insensitive; anything else yields "".
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
