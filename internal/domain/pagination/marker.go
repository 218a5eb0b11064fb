package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarkerKind tells a page number apart from a gap.
type MarkerKind string

const (
	KindPage     MarkerKind = "page"
	KindEllipsis MarkerKind = "ellipsis"
)

// Marker is one entry of a page window: a page number or an ellipsis.
type Marker struct {
	Kind MarkerKind
	Page int
}

// Ellipsis stands for one or more consecutive omitted pages.
var Ellipsis = Marker{Kind: KindEllipsis}

// Number returns the marker for page n.
func Number(n int) Marker {
	return Marker{Kind: KindPage, Page: n}
}

func (m Marker) IsEllipsis() bool {
	return m.Kind == KindEllipsis
}

func (m Marker) String() string {
	if m.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(m.Page)
}

type markerJSON struct {
	Kind MarkerKind `json:"kind"`
	Page *int       `json:"page,omitempty"`
}

func (m Marker) MarshalJSON() ([]byte, error) {
	if m.IsEllipsis() {
		return json.Marshal(markerJSON{Kind: KindEllipsis})
	}
	page := m.Page
	return json.Marshal(markerJSON{Kind: KindPage, Page: &page})
}

func (m *Marker) UnmarshalJSON(data []byte) error {
	var raw markerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case KindEllipsis:
		*m = Ellipsis
	case KindPage:
		if raw.Page == nil {
			return fmt.Errorf("page marker without page number")
		}
		*m = Number(*raw.Page)
	default:
		return fmt.Errorf("unknown marker kind %q", raw.Kind)
	}
	return nil
}
