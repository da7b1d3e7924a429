package paginator

// Page returns the 1-indexed page that Skip falls on for the current Limit.
func (q OffsetQuery) Page() int {
	if q.Limit < 1 || q.Skip < 0 {
		return 1
	}
	return q.Skip/q.Limit + 1
}
