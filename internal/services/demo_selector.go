package services

import (
	"context"

	"github.com/you/homestay/domain"
)

// DemoSelectorImpl implements domain.DemoSelector. It is a pure passthrough
// over the predefined archetype profiles: no directory lookup, no password
// check, no shared state with the session store.
type DemoSelectorImpl struct {
	profiles []domain.DemoProfile
	audit    domain.AuditLogger
}

// NewDemoSelector creates a demo selector over profiles.
func NewDemoSelector(profiles []domain.DemoProfile, audit domain.AuditLogger) *DemoSelectorImpl {
	return &DemoSelectorImpl{profiles: profiles, audit: audit}
}

// Profiles implements domain.DemoSelector.
func (d *DemoSelectorImpl) Profiles() []domain.DemoProfile {
	out := make([]domain.DemoProfile, len(d.profiles))
	copy(out, d.profiles)
	return out
}

// Select implements domain.DemoSelector.
func (d *DemoSelectorImpl) Select(role domain.Role) (*domain.Identity, error) {
	for _, p := range d.profiles {
		if p.Role == role {
			identity := p.Identity()
			_ = d.audit.LogEvent(context.Background(), domain.NewAuditEvent(domain.DemoSelectedEvent).WithIdentity(identity))
			return identity, nil
		}
	}
	return nil, domain.ErrInvalidUserType
}

// Compile-time interface compliance verification
var _ domain.DemoSelector = (*DemoSelectorImpl)(nil)
