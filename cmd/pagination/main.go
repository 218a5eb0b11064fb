package main

import (
	"errors"
	"strings"
	"time"

	"hospital-admin/internal/domain/pagination"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
)

// MockResource simulates a paginated backend list with immutable data in memory
type MockResource[T any] struct {
	data []T
}

// NewMockResource creates a new MockResource
func NewMockResource[T any](data []T) *MockResource[T] {
	return &MockResource[T]{data: data}
}

// FetchPage returns the items of the 1-based page and the state the backend would report.
func (r *MockResource[T]) FetchPage(page int, perPage int) ([]T, pagination.State) {
	// simulates backend latency
	time.Sleep(50 * time.Millisecond)

	state := pagination.NewState(page, perPage, len(r.data))
	if page < 1 || page > state.LastPage || len(r.data) == 0 {
		return []T{}, state
	}

	offset := (page - 1) * perPage
	end := min(offset+perPage, len(r.data))
	return append([]T(nil), r.data[offset:end]...), state
}

func renderMarkers(markers []pagination.Marker) string {
	parts := make([]string, len(markers))
	for i, marker := range markers {
		parts[i] = marker.String()
	}
	return strings.Join(parts, " ")
}

func renderLabel(label pagination.Label) string {
	if label.Empty {
		return msg.GetMessage("pagination.empty")
	}
	return msg.GetMessage("pagination.label", label.RangeStart, label.RangeEnd, label.Total)
}

func main() {
	data := make([]int, 47)
	for i := range data {
		data[i] = i + 1
	}
	resource := NewMockResource(data)
	perPage := 5

	// Walk every page the way the stock scan does: next until the dispatcher refuses.
	page := 1
	for {
		items, state := resource.FetchPage(page, perPage)
		view := pagination.DeriveView(state)
		log.Infof("%s | items=%v | [%s] prev=%t next=%t",
			renderLabel(view.Label), items, renderMarkers(view.Markers), view.CanGoPrev, view.CanGoNext)

		next, err := pagination.RequestNext(state)
		if errors.Is(err, pagination.ErrOutOfRange) {
			break
		}
		page = next
	}

	// A jump far past the end, as left behind by a delete that shrank the list.
	_, state := resource.FetchPage(1, perPage)
	if _, err := pagination.RequestPage(state, 40); err != nil {
		log.Warn(msg.GetMessage("pagination.error.out-of-range", 40, state.LastPage))
	}
	if _, err := pagination.RequestPage(state, 1); errors.Is(err, pagination.ErrNoOp) {
		log.Infof("Page 1 is already shown, skipping fetch")
	}
}
