package model

import (
	"hospital-admin/internal/domain/pagination"
	"hospital-admin/pkg/util/numberutils"
)

// Page is a list response: the rows of one page plus everything needed to render its controls.
type Page[T any] struct {
	Content    []T              `json:"content"`
	State      pagination.State `json:"state"`
	Pagination pagination.View  `json:"pagination"`
}

// NewPage creates a Page from the backend state, deriving its pagination view.
func NewPage[T any](content []T, state pagination.State) *Page[T] {
	if content == nil {
		content = []T{}
	}
	state = state.Normalize()
	return &Page[T]{
		Content:    content,
		State:      state,
		Pagination: pagination.DeriveView(state),
	}
}

// Meta is the pagination block of a backend list response.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// State converts the backend meta into a pagination state. A missing last_page is
// derived from total and per_page.
func (m Meta) State() pagination.State {
	if m.LastPage < 1 {
		return pagination.NewState(m.CurrentPage, m.PerPage, m.Total)
	}
	return pagination.State{
		Page:     m.CurrentPage,
		PerPage:  m.PerPage,
		Total:    m.Total,
		LastPage: m.LastPage,
	}.Normalize()
}

// StateFor is State with current_page and per_page taken from query when the backend
// leaves them out.
func (m Meta) StateFor(query ListQuery) pagination.State {
	if m.CurrentPage == 0 {
		m.CurrentPage = query.Page
	}
	if m.PerPage == 0 {
		m.PerPage = query.PerPage
	}
	return m.State()
}

// ListEnvelope is a backend list response.
type ListEnvelope[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

// DataEnvelope is a backend single record response.
type DataEnvelope[T any] struct {
	Data T `json:"data"`
}

// BackendError is the error body returned by the backend.
type BackendError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ListQuery is a list request as received from the admin UI.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
}

// Params returns the query as backend query parameters.
func (q ListQuery) Params() map[string]string {
	params := map[string]string{
		"page":     numberutils.Itoa(q.Page),
		"per_page": numberutils.Itoa(q.PerPage),
	}
	if q.Search != "" {
		params["q"] = q.Search
	}
	return params
}
