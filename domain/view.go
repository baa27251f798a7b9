package domain

// Screen is a top-level screen the renderer can show.
type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenSignup           Screen = "signup"
	ScreenDemoPicker       Screen = "demo-picker"
	ScreenAdminDashboard   Screen = "dashboard:admin"
	ScreenHostDashboard    Screen = "dashboard:host"
	ScreenTouristDashboard Screen = "dashboard:tourist"
	ScreenGuideDashboard   Screen = "dashboard:guide"
	ScreenInvalidUserType  Screen = "error:invalid-user-type"
)

// ViewMode selects among the pre-authentication screens. Once any identity
// is set, real or demo, the router ignores it entirely.
type ViewMode string

const (
	ViewModeLogin    ViewMode = "login"
	ViewModeSignup   ViewMode = "signup"
	ViewModeDemoPick ViewMode = "demo-pick"
)

// DashboardScreen maps a role to its dashboard screen. The switch is
// exhaustive over the Role constants; adding a role without extending it
// surfaces as ErrInvalidUserType at runtime and as a failing router test.
func DashboardScreen(role Role) (Screen, error) {
	switch role {
	case RoleAdmin:
		return ScreenAdminDashboard, nil
	case RoleHost:
		return ScreenHostDashboard, nil
	case RoleTourist:
		return ScreenTouristDashboard, nil
	case RoleGuide:
		return ScreenGuideDashboard, nil
	default:
		return ScreenInvalidUserType, ErrInvalidUserType
	}
}
