// Package route maps request paths to views. It owns the routing table, the
// single access rule (the admin subtree needs the admin role) and the
// category/search filters the listing views apply.
package route

import (
	"path"    // Path cleaning
	"strings" // Segment splitting

	"worldsporta/internal/domain" // Importing domain models
)

// View identifies one page of the site
type View string

const (
	ViewHome           View = "home"
	ViewNews           View = "news"
	ViewArticle        View = "article"
	ViewStore          View = "store"
	ViewCart           View = "cart"
	ViewGame           View = "game"
	ViewLogin          View = "login"
	ViewAdminDashboard View = "admin_dashboard"
	ViewAdminUsers     View = "admin_users"
	ViewAdminNews      View = "admin_news"
	ViewNotFound       View = "not_found"
)

// LoginPath is where denied visitors are sent
const LoginPath = "/login"

const adminRoot = "/admin"

// Route is one row of the routing table
type Route struct {
	Pattern   string // gin-style pattern, :name captures one segment
	View      View   // Page rendered for a match
	AdminOnly bool   // Requires the admin role
}

var table = []Route{
	{Pattern: "/", View: ViewHome},
	{Pattern: "/news", View: ViewNews},
	{Pattern: "/news/:id", View: ViewArticle},
	{Pattern: "/store", View: ViewStore},
	{Pattern: "/store/cart", View: ViewCart},
	{Pattern: "/game", View: ViewGame},
	{Pattern: LoginPath, View: ViewLogin},
	{Pattern: adminRoot, View: ViewAdminDashboard, AdminOnly: true},
	{Pattern: adminRoot + "/users", View: ViewAdminUsers, AdminOnly: true},
	{Pattern: adminRoot + "/news", View: ViewAdminNews, AdminOnly: true},
}

// Table returns the routing table in registration order
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Snapshot is the part of the state container the resolver reads
type Snapshot interface {
	CurrentUser() (domain.User, bool)
	Post(id string) (domain.NewsPost, error)
}

// Resolution is the outcome of resolving a path
type Resolution struct {
	View     View              // Page to render
	Params   map[string]string // Captured pattern segments
	Redirect string            // Set when the visitor must be sent elsewhere
}

// Param returns a captured path segment
func (r Resolution) Param(name string) string {
	return r.Params[name]
}

// IsAdminPath reports whether p lies in the admin subtree
func IsAdminPath(p string) bool {
	p = Clean(p)
	return p == adminRoot || strings.HasPrefix(p, adminRoot+"/")
}

// CanAccess reports whether a visitor with the given role may open p. An empty role is an anonymous visitor.
func CanAccess(role domain.Role, p string) bool {
	if !IsAdminPath(p) {
		return true
	}
	return role == domain.RoleAdmin
}

// Resolve picks exactly one view for p given the current state
func Resolve(p string, snap Snapshot) Resolution {
	p = Clean(p)

	var role domain.Role
	if u, ok := snap.CurrentUser(); ok {
		role = u.Role
	}
	if !CanAccess(role, p) {
		return Resolution{View: ViewLogin, Redirect: LoginPath}
	}

	for _, rt := range table {
		params, ok := match(rt.Pattern, p)
		if !ok {
			continue
		}
		if rt.View == ViewArticle {
			if _, err := snap.Post(params["id"]); err != nil {
				return Resolution{View: ViewNotFound, Params: params}
			}
		}
		return Resolution{View: rt.View, Params: params}
	}
	return Resolution{View: ViewNotFound}
}

// Clean normalises a request path: single slashes, no trailing slash, rooted
func Clean(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

// match compares a pattern against a cleaned path segment by segment
func match(pattern, p string) (map[string]string, bool) {
	ps := split(pattern)
	xs := split(p)
	if len(ps) != len(xs) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range ps {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if xs[i] == "" {
				return nil, false
			}
			params[name] = xs[i]
			continue
		}
		if seg != xs[i] {
			return nil, false
		}
	}
	return params, true
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
