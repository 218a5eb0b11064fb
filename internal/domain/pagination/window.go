package pagination

// DefaultSiblingCount is the number of neighbours shown on each side of the current page.
const DefaultSiblingCount = 1

// ComputeWindow returns the compact list of page markers to show for page out of lastPage.
//
// The first and last page are always present, together with every page within siblingCount
// of the current one. Each run of omitted pages collapses into a single Ellipsis. When every
// page fits in the window (lastPage <= 2*siblingCount+3) no ellipsis is produced.
// An out of range page is anchored to the nearest valid page instead of failing.
func ComputeWindow(page, lastPage, siblingCount int) []Marker {
	if lastPage < 1 {
		lastPage = 1
	}
	if siblingCount < 0 {
		siblingCount = 0
	}
	page = clamp(page, 1, lastPage)

	// lastPage <= 2*siblingCount+3, written so that neither side can overflow
	if siblingCount >= (lastPage-2)/2 {
		markers := make([]Marker, 0, lastPage)
		for i := 1; i <= lastPage; i++ {
			markers = append(markers, Number(i))
		}
		return markers
	}

	lo := max(page-siblingCount, 2)
	hi := min(page, lastPage-1-siblingCount) + siblingCount

	markers := make([]Marker, 0, hi-lo+5)
	markers = append(markers, Number(1))
	if lo > 2 {
		markers = append(markers, Ellipsis)
	}
	for i := lo; i <= hi; i++ {
		markers = append(markers, Number(i))
	}
	if hi < lastPage-1 {
		markers = append(markers, Ellipsis)
	}
	return append(markers, Number(lastPage))
}
