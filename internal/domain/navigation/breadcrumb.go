package navigation

import (
	"strings"

	"hospital-admin/pkg/util/numberutils"
)

// Breadcrumb is one step of the page header trail. The last crumb has no Path.
type Breadcrumb struct {
	Title string `json:"title"`
	Path  string `json:"path,omitempty"`
}

var actionTitles = map[string]string{
	"create": "Create",
	"edit":   "Edit",
}

// Breadcrumbs builds Home, the resolved menu chain and any trailing action segments
// (create, edit, numeric ids) found after the deepest matching entry.
func Breadcrumbs(menu []Item, currentPath string) []Breadcrumb {
	crumbs := []Breadcrumb{{Title: "Home", Path: "/"}}

	chain := Resolve(menu, currentPath)
	matched := "/"
	for _, item := range chain {
		if item.Path == "/" {
			continue
		}
		crumbs = append(crumbs, Breadcrumb{Title: item.Title, Path: item.Path})
		if item.Path != "" {
			matched = cleanPath(item.Path)
		}
	}

	rest := strings.TrimPrefix(cleanPath(currentPath), matched)
	for _, segment := range strings.Split(strings.Trim(rest, "/"), "/") {
		if title, ok := actionTitles[segment]; ok {
			crumbs = append(crumbs, Breadcrumb{Title: title})
			continue
		}
		if numberutils.IsDigits(segment) {
			crumbs = append(crumbs, Breadcrumb{Title: "Detail"})
		}
	}

	crumbs[len(crumbs)-1].Path = ""
	return crumbs
}
