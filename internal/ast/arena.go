package ast

// Arena is an append-only store with 1-based indices so the zero
// PayloadID stays free as the "no payload" sentinel.
type Arena[T any] struct {
	items []T
}

func (a *Arena[T]) Alloc(v T) PayloadID {
	a.items = append(a.items, v)
	return PayloadID(len(a.items))
}

func (a *Arena[T]) Get(id PayloadID) *T {
	if !id.IsValid() || int(id) > len(a.items) {
		return nil
	}
	return &a.items[id-1]
}

func (a *Arena[T]) Len() int { return len(a.items) }
