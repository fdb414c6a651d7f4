package auth

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

type tenantContextKey struct{}

// WithTenant returns a context carrying the current agency for the duration
// of one request. The value is installed once when the principal is resolved
// and discarded with the request; it is never ambient global state.
func WithTenant(ctx context.Context, agencyID kernel.UUID) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, agencyID)
}

// TenantFromContext returns the current agency, if one is set. Requests by
// platform administrators and customers carry no tenant.
func TenantFromContext(ctx context.Context) (kernel.UUID, bool) {
	agencyID, ok := ctx.Value(tenantContextKey{}).(kernel.UUID)
	return agencyID, ok
}

// CheckTenant cross-checks a tenant-qualified operation against the request
// tenant. When a tenant is present in the context and does not match the
// resource's owning agency, a TenantViolationError is returned. A context
// without a tenant (platform scope) passes.
func CheckTenant(ctx context.Context, resourceAgencyID kernel.UUID, operation string) error {
	tenant, ok := TenantFromContext(ctx)
	if !ok {
		return nil
	}
	if !tenant.IsEqual(resourceAgencyID) {
		return errs.NewTenantViolationError(operation, resourceAgencyID.String())
	}
	return nil
}
