package pagination

// Label describes the range of records shown on the current page.
// Empty is set when there is nothing to show, RangeStart and RangeEnd are then 0.
type Label struct {
	RangeStart int  `json:"rangeStart"`
	RangeEnd   int  `json:"rangeEnd"`
	Total      int  `json:"total"`
	Empty      bool `json:"empty"`
}

// View is everything a pagination control needs to render.
type View struct {
	Label     Label    `json:"label"`
	Markers   []Marker `json:"markers"`
	CanGoPrev bool     `json:"canGoPrev"`
	CanGoNext bool     `json:"canGoNext"`
}

// DeriveView computes the label, markers and navigation flags for state.
func DeriveView(state State) View {
	state = state.Normalize()

	label := Label{Total: state.Total}
	if state.Total == 0 {
		label.Empty = true
	} else {
		label.RangeStart = (state.Page-1)*state.PerPage + 1
		label.RangeEnd = min(state.Page*state.PerPage, state.Total)
		if label.RangeStart > label.RangeEnd {
			label.RangeStart = label.RangeEnd
		}
	}

	return View{
		Label:     label,
		Markers:   ComputeWindow(state.Page, state.LastPage, DefaultSiblingCount),
		CanGoPrev: state.Page > 1,
		CanGoNext: state.Page < state.LastPage,
	}
}
