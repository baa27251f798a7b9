package services

import (
	"context"
	"fmt"

	"github.com/you/homestay/domain"
)

// ViewRouterImpl implements domain.ViewRouter.
//
// Resolution order: a real session identity wins over a demo identity; with
// no identity at all the view mode picks among the pre-authentication
// screens; with an identity the role alone decides the dashboard, gated by
// the access policy.
type ViewRouterImpl struct {
	policy domain.PolicyService
	audit  domain.AuditLogger
}

// NewViewRouter creates a new view router.
func NewViewRouter(policy domain.PolicyService, audit domain.AuditLogger) *ViewRouterImpl {
	return &ViewRouterImpl{policy: policy, audit: audit}
}

// Decide implements domain.ViewRouter.
func (r *ViewRouterImpl) Decide(session, demo *domain.Identity, mode domain.ViewMode) (domain.Screen, error) {
	identity := session
	if identity == nil {
		identity = demo
	}

	if identity == nil {
		switch mode {
		case domain.ViewModeSignup:
			return domain.ScreenSignup, nil
		case domain.ViewModeDemoPick:
			return domain.ScreenDemoPicker, nil
		default:
			return domain.ScreenLogin, nil
		}
	}

	screen, err := domain.DashboardScreen(identity.Role)
	if err != nil {
		_ = r.audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.AccessDeniedEvent).WithIdentity(identity).WithError(err))
		return domain.ScreenInvalidUserType, err
	}

	ok, err := r.policy.CanView(identity.Role, screen)
	if err != nil {
		return domain.ScreenInvalidUserType, fmt.Errorf("policy check failed: %w", err)
	}
	if !ok {
		_ = r.audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.AccessDeniedEvent).WithIdentity(identity).WithScreen(screen).WithError(domain.ErrAccessDenied))
		return domain.ScreenInvalidUserType, domain.ErrAccessDenied
	}

	_ = r.audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.AccessGrantedEvent).WithIdentity(identity).WithScreen(screen))
	return screen, nil
}

// Compile-time interface compliance verification
var _ domain.ViewRouter = (*ViewRouterImpl)(nil)
