// Package navigation holds the application shell's link tables and the
// rules that decide which links are shown and highlighted for a path.
package navigation

import "strings"

const (
	LandingPath = "/"
	ProfilePath = "/profile"
	LoginPath   = "/login"
	AdminPath   = "/super-admin"
)

// Item is a link. Exact items are active only on their own path; the rest
// are also active on any path below them.
type Item struct {
	Title     string
	URL       string
	Exact     bool
	AdminOnly bool
}

// IsActive matches whole path segments, so "/deals" is not active on
// "/dealsx".
func (i Item) IsActive(path string) bool {
	path = Normalize(path)
	if path == i.URL {
		return true
	}
	if i.Exact {
		return false
	}
	return strings.HasPrefix(path, strings.TrimSuffix(i.URL, "/")+"/")
}

var SidebarItems = []Item{
	{Title: "Dashboard", URL: "/", Exact: true},
	{Title: "Customers", URL: "/customers"},
	{Title: "Deals", URL: "/deals"},
	{Title: "Settings", URL: "/settings"},
}

var ProfileItems = []Item{
	{Title: "Home", URL: ProfilePath, Exact: true},
	{Title: "Personal info", URL: "/profile/personal-info"},
	{Title: "Security", URL: "/profile/security"},
	{Title: "Payments", URL: "/profile/payments", AdminOnly: true},
}

// Normalize returns path without query, fragment or trailing slash; an
// empty path is the landing page.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" || !strings.HasPrefix(path, "/") {
		path = "/" + path
		if path != "/" {
			path = strings.TrimRight(path, "/")
		}
	}
	return path
}

func IsLanding(path string) bool { return Normalize(path) == LandingPath }

// IsProfilePage is a plain prefix test, so "/profiles" counts too.
func IsProfilePage(path string) bool { return strings.HasPrefix(Normalize(path), ProfilePath) }

// VisibleProfileItems drops admin-only items unless canSeeAdmin reports
// true. Personal accounts are passed true by the caller.
func VisibleProfileItems(canSeeAdmin bool) []Item {
	out := make([]Item, 0, len(ProfileItems))
	for _, item := range ProfileItems {
		if item.AdminOnly && !canSeeAdmin {
			continue
		}
		out = append(out, item)
	}
	return out
}
