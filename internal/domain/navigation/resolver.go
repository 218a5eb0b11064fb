package navigation

import "strings"

// IsActive reports whether itemPath matches currentPath exactly or is a parent of it
// on a segment boundary. The root path is only active on an exact match.
func IsActive(itemPath, currentPath string) bool {
	if itemPath == "" {
		return false
	}
	itemPath = cleanPath(itemPath)
	currentPath = cleanPath(currentPath)

	if itemPath == currentPath {
		return true
	}
	if itemPath == "/" {
		return false
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Resolve returns the chain of items from the top level down to the deepest entry that
// matches currentPath. When several entries match, the longest path wins.
func Resolve(menu []Item, currentPath string) []Item {
	best, _ := resolve(menu, currentPath)
	return best
}

func resolve(items []Item, currentPath string) ([]Item, int) {
	var best []Item
	bestLen := -1

	for _, item := range items {
		if item.HasChildren() {
			if chain, length := resolve(item.Children, currentPath); length > bestLen {
				best = append([]Item{item}, chain...)
				bestLen = length
			}
		}
		if IsActive(item.Path, currentPath) && len(cleanPath(item.Path)) > bestLen {
			best = []Item{item}
			bestLen = len(cleanPath(item.Path))
		}
	}
	return best, bestLen
}

func cleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
