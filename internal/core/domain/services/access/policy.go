package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// decide is the shared evaluation order behind every tenant-scoped
// predicate: platform admins pass, employees must match the resource tenant
// before any role is considered, customers are denied.
//
// requiredRoles empty means any employee of the tenant qualifies. A missing
// tenant id on an employee principal is an internal consistency violation
// and denies; BelongsToAgency already reports false for that case.
func decide(principal auth.Principal, operation string, resourceAgencyID kernel.UUID, requiredRoles ...string) error {
	if err := principal.Validate(); err != nil {
		return errs.NewSecurityViolationErrorWithCause(operation, err)
	}

	if principal.IsPlatformAdmin() {
		return nil
	}

	if !principal.IsAgencyEmployee() {
		return errs.NewSecurityViolationError(operation)
	}

	if !principal.BelongsToAgency(resourceAgencyID) {
		return errs.NewTenantViolationError(operation, resourceAgencyID.String())
	}

	if len(requiredRoles) > 0 && !principal.HasAnyRole(requiredRoles...) {
		return errs.NewSecurityViolationError(operation)
	}

	return nil
}

// platformOnly denies everyone but platform administrators.
func platformOnly(principal auth.Principal, operation string) error {
	if err := principal.Validate(); err != nil {
		return errs.NewSecurityViolationErrorWithCause(operation, err)
	}
	if !principal.IsPlatformAdmin() {
		return errs.NewSecurityViolationError(operation)
	}
	return nil
}
