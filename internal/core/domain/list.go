package domain

// List is the envelope the remote APIs use for collection responses,
// typically {"object": "list", "data": [...], "has_more": false}.
type List[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
}

// First returns the first element of the list, or false when the list
// is empty.
func (l List[T]) First() (T, bool) {
	if len(l.Data) == 0 {
		var zero T
		return zero, false
	}
	return l.Data[0], true
}
