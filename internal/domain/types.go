package domain

// DefaultPageSize is the toy listing page size when none is configured.
const DefaultPageSize = 5

// ToySort selects a sort field; Dir is reduced to its sign (>= 0 ascending).
type ToySort struct {
	Field string
	Dir   int
}

// ToyFilter is the normalized, typed form of a toy listing request.
// InStock nil means "no stock filter"; Labels use AND (superset) semantics.
type ToyFilter struct {
	Txt      string
	InStock  *bool
	Labels   []string
	PageIdx  int
	Sort     ToySort
	PageSize int
}

// Limit returns the effective page size.
func (f ToyFilter) Limit() int {
	if f.PageSize > 0 {
		return f.PageSize
	}
	return DefaultPageSize
}

// Skip returns the pagination offset. Negative page indexes clamp to 0.
func (f ToyFilter) Skip() int64 {
	pageIdx := f.PageIdx
	if pageIdx < 0 {
		pageIdx = 0
	}
	return int64(pageIdx) * int64(f.Limit())
}
