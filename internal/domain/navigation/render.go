package navigation

// RenderState is the sidebar state a render is computed for.
type RenderState struct {
	CurrentPath string `json:"currentPath"`
	Collapsed   bool   `json:"collapsed"`
	IsMobile    bool   `json:"isMobile"`
}

// RenderedItem is an Item with its presentation resolved.
type RenderedItem struct {
	Title    string         `json:"title"`
	Path     string         `json:"path,omitempty"`
	Icon     string         `json:"icon,omitempty"`
	Variant  Variant        `json:"variant"`
	Active   bool           `json:"active"`
	Open     bool           `json:"open"`
	Children []RenderedItem `json:"children,omitempty"`
}

// Render resolves the variant, active and open flags of every entry in one pass.
// Only entries on the resolved chain are active; groups on the chain start open,
// except flyouts which open on hover.
func Render(menu []Item, state RenderState) []RenderedItem {
	chain := Resolve(menu, state.CurrentPath)
	return render(menu, state, chain, 0)
}

func render(items []Item, state RenderState, chain []Item, depth int) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, item := range items {
		onChain := depth < len(chain) && sameItem(chain[depth], item)
		variant := ResolveVariant(state.Collapsed, state.IsMobile, item.HasChildren())

		rendered := RenderedItem{
			Title:   item.Title,
			Path:    item.Path,
			Icon:    item.Icon,
			Variant: variant,
			Active:  onChain,
			Open:    onChain && variant == Accordion,
		}
		if item.HasChildren() {
			childChain := chain
			if !onChain {
				childChain = nil
			}
			rendered.Children = render(item.Children, state, childChain, depth+1)
		}
		out = append(out, rendered)
	}
	return out
}

func sameItem(a, b Item) bool {
	return a.Title == b.Title && a.Path == b.Path
}
