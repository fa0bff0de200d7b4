package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/navigation/dto"
	settingUsecases "github.com/appmaster-hq/appmaster/internal/application/setting/usecases"
	"github.com/appmaster-hq/appmaster/internal/domain/navigation"
	vo "github.com/appmaster-hq/appmaster/internal/domain/user/valueobjects"
	"github.com/appmaster-hq/appmaster/internal/shared/authorization"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// Resource and action names checked for admin-only profile links.
const (
	paymentsResource = "payments"
	viewAction       = "view"
)

// PermissionChecker is satisfied by the casbin enforcer.
type PermissionChecker interface {
	Enforce(subject, resource, action string) (bool, error)
}

type GetNavigationExecutor interface {
	Execute(ctx context.Context, q GetNavigationQuery) (*dto.NavigationDTO, error)
}

type GetNavigationQuery struct {
	Path    string
	Session *authorization.Session
}

// GetNavigationUseCase builds the shell for a path. Anonymous callers get
// the navbar only.
type GetNavigationUseCase struct {
	settings    settingUsecases.GetSettingsExecutor
	permissions PermissionChecker
	logger      logger.Interface
}

func NewGetNavigationUseCase(
	settings settingUsecases.GetSettingsExecutor,
	permissions PermissionChecker,
	logger logger.Interface,
) *GetNavigationUseCase {
	return &GetNavigationUseCase{settings: settings, permissions: permissions, logger: logger}
}

func (uc *GetNavigationUseCase) Execute(ctx context.Context, q GetNavigationQuery) (*dto.NavigationDTO, error) {
	path := navigation.Normalize(q.Path)
	result := &dto.NavigationDTO{
		Path:   path,
		Navbar: buildNavbar(path, q.Session),
	}
	if q.Session == nil {
		return result, nil
	}

	result.Sidebar = dto.SidebarDTO{
		Open:  uc.sidebarOpen(ctx, q.Session),
		Items: dto.ToLinkDTOs(navigation.SidebarItems, path),
	}
	result.ProfileSidebar = dto.ToLinkDTOs(navigation.VisibleProfileItems(uc.canSeeAdminItems(q.Session)), path)
	return result, nil
}

// sidebarOpen falls back to an open sidebar when settings cannot be read;
// the shell still renders.
func (uc *GetNavigationUseCase) sidebarOpen(ctx context.Context, session *authorization.Session) bool {
	settings, err := uc.settings.Execute(ctx, session)
	if err != nil {
		uc.logger.Warnw("failed to load settings for navigation", "user_id", session.UserID, "error", err)
		return true
	}
	return settings.UI.SidebarOpen
}

func (uc *GetNavigationUseCase) canSeeAdminItems(session *authorization.Session) bool {
	if session.AccountType == vo.AccountTypePersonal.String() {
		return true
	}
	allowed, err := uc.permissions.Enforce(session.Role.String(), paymentsResource, viewAction)
	if err != nil {
		uc.logger.Warnw("permission check failed", "user_id", session.UserID, "error", err)
		return false
	}
	return allowed
}

func buildNavbar(path string, session *authorization.Session) dto.NavbarDTO {
	landing := navigation.IsLanding(path)
	if session == nil {
		return dto.NavbarDTO{
			ShowBack: !landing,
			Links: []dto.LinkDTO{
				{Title: "Login", URL: navigation.LoginPath},
				{Title: "Get Started", URL: navigation.LoginPath},
			},
		}
	}
	profile := navigation.IsProfilePage(path)
	return dto.NavbarDTO{
		ShowBack:          !landing,
		Authenticated:     true,
		ShowDashboardLink: !landing,
		ShowNotifications: !profile,
		ShowProfileLink:   !profile,
		ShowAdminPanel:    session.IsPlatformAdmin(),
		ShowLogout:        true,
		Links:             []dto.LinkDTO{},
	}
}
