package http

import (
	"context"

	"mountainride-backend/internal/security"
)

type claimsKey struct{}

func withEmployee(ctx context.Context, claims *security.EmployeeClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// EmployeeFromContext returns the authenticated employee of the request
func EmployeeFromContext(ctx context.Context) (*security.EmployeeClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*security.EmployeeClaims)
	return claims, ok
}
