// Package routes maps navigation paths onto planner views.
package routes

import (
	"sort"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

const (
	Root           = "/"
	Dashboard      = "/dashboard"
	Identification = "/identification"
)

// Route is a resolved navigation target.
type Route struct {
	// Path is where navigation ends up after redirects.
	Path    string
	Feature domain.Feature
	// ItemID is set for menu item routes.
	ItemID string
	// Redirected is true when Path differs from the requested path.
	Redirected bool
}

// IsIdentification reports whether r is the identification view.
func (r Route) IsIdentification() bool { return r.Path == Identification }

// Resolve maps path to a route. Unknown paths and hidden items go to the
// root. Everything but the identification view requires an active user.
func Resolve(doc *domain.Document, path string, authenticated bool) Route {
	requested := normalize(path)
	r := match(doc, requested)
	if !r.IsIdentification() && !authenticated {
		r = Route{Path: Identification}
	}
	r.Redirected = r.Path != requested
	return r
}

func match(doc *domain.Document, path string) Route {
	switch path {
	case Identification:
		return Route{Path: Identification}
	case Root, Dashboard:
		return Route{Path: path, Feature: domain.FeatureDashboard}
	}
	if doc != nil {
		id := strings.TrimPrefix(path, "/")
		for _, item := range doc.Menu.Items {
			if item.ID == id && item.ID != domain.IndexItemID && item.Visible {
				return Route{Path: path, Feature: item.Feature(), ItemID: item.ID}
			}
		}
	}
	return Route{Path: Root, Feature: domain.FeatureDashboard}
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = Root
		}
	}
	return path
}

// Entry is one navigable line of the menu.
type Entry struct {
	ItemID string
	Title  string
	Path   string
}

// Menu lists the visible menu items in order. The index item links to the root.
func Menu(doc *domain.Document) []Entry {
	if doc == nil {
		return nil
	}
	items := make([]domain.MenuItem, 0, len(doc.Menu.Items))
	for _, item := range doc.Menu.Items {
		if item.Visible {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	out := make([]Entry, len(items))
	for i, item := range items {
		path := "/" + item.ID
		if item.ID == domain.IndexItemID {
			path = Root
		}
		out[i] = Entry{ItemID: item.ID, Title: item.Title, Path: path}
	}
	return out
}
