package pagination

// State is the pagination state returned by the backend for one list query.
// LastPage is expected to equal ceil(Total/PerPage) and is never below 1.
type State struct {
	Page     int `json:"page"`
	PerPage  int `json:"perPage"`
	Total    int `json:"total"`
	LastPage int `json:"lastPage"`
}

// NewState builds a State computing LastPage from total and perPage.
func NewState(page, perPage, total int) State {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	return State{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPageOf(total, perPage),
	}.Normalize()
}

// Normalize clamps transient violations instead of rejecting them.
func (s State) Normalize() State {
	if s.PerPage < 1 {
		s.PerPage = 1
	}
	if s.Total < 0 {
		s.Total = 0
	}
	if s.LastPage < 1 {
		s.LastPage = 1
	}
	s.Page = clamp(s.Page, 1, s.LastPage)
	return s
}

func lastPageOf(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
