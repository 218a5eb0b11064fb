package navigation

// Variant is how a single sidebar entry is presented.
type Variant string

const (
	// SingleItem is a plain link.
	SingleItem Variant = "single"
	// FlyoutMenu opens the children beside a collapsed sidebar.
	FlyoutMenu Variant = "flyout"
	// Accordion expands the children inline.
	Accordion Variant = "accordion"
)

// ResolveVariant picks the presentation of an entry from the sidebar state.
// On mobile the sidebar is a full drawer so groups always expand inline.
func ResolveVariant(collapsed, isMobile, hasChildren bool) Variant {
	switch {
	case !hasChildren:
		return SingleItem
	case collapsed && !isMobile:
		return FlyoutMenu
	default:
		return Accordion
	}
}
