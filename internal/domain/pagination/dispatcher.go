package pagination

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange rejects a target page outside [1, LastPage].
	ErrOutOfRange = errors.New("page out of range")
	// ErrNoOp rejects a target equal to the current page; callers skip the re-fetch.
	ErrNoOp = errors.New("page already selected")
)

// RequestPage validates a page change and returns the page to fetch.
func RequestPage(state State, target int) (int, error) {
	if target < 1 || target > state.LastPage {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, target, state.LastPage)
	}
	if target == state.Page {
		return 0, ErrNoOp
	}
	return target, nil
}

func RequestPrev(state State) (int, error) {
	return RequestPage(state, state.Page-1)
}

func RequestNext(state State) (int, error) {
	return RequestPage(state, state.Page+1)
}

// Move names a relative page change.
type Move string

const (
	MovePrev Move = "prev"
	MoveNext Move = "next"
)

// RequestMove dispatches a relative move. Unknown moves are out of range.
func RequestMove(state State, move Move) (int, error) {
	switch move {
	case MovePrev:
		return RequestPrev(state)
	case MoveNext:
		return RequestNext(state)
	default:
		return 0, fmt.Errorf("%w: unknown move %q", ErrOutOfRange, move)
	}
}
