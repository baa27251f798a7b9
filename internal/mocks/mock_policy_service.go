package mocks

import "github.com/you/homestay/domain"

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	CanViewFunc func(role domain.Role, screen domain.Screen) (bool, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// CanView checks whether role may view screen
func (m *MockPolicyService) CanView(role domain.Role, screen domain.Screen) (bool, error) {
	if m.CanViewFunc != nil {
		return m.CanViewFunc(role, screen)
	}
	// Default behavior: allow
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
