package services

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/you/homestay/domain"
)

// dashboardPolicyModel is an exact-match subject/object model: each role is
// granted exactly its own dashboard screen.
const dashboardPolicyModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

// PolicyServiceImpl implements domain.PolicyService using Casbin.
type PolicyServiceImpl struct {
	enforcer *casbin.Enforcer
}

// NewPolicyService creates a policy service with the role-to-dashboard
// policy preloaded.
func NewPolicyService() (*PolicyServiceImpl, error) {
	m, err := model.NewModelFromString(dashboardPolicyModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, role := range domain.Roles() {
		screen, err := domain.DashboardScreen(role)
		if err != nil {
			return nil, err
		}
		if _, err := e.AddPolicy(string(role), string(screen)); err != nil {
			return nil, err
		}
	}

	return &PolicyServiceImpl{enforcer: e}, nil
}

// CanView implements domain.PolicyService
func (p *PolicyServiceImpl) CanView(role domain.Role, screen domain.Screen) (bool, error) {
	return p.enforcer.Enforce(string(role), string(screen))
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*PolicyServiceImpl)(nil)
