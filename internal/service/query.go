package service

// DefaultLimit is the page size applied when the caller supplies none.
const DefaultLimit = 25

// paginate slices a sorted, filtered sequence by a zero-based offset and a
// limit. Slicing beyond the end yields an empty page, never an error. The
// match count is always taken from the full sequence before slicing.
func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
