package workflow

import "context"

type storeKey struct{}

// WithStore returns a context carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store provisioned with WithStore. It panics when
// none is present: reaching for the store outside its scope is a bug.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		panic("workflow: no store in context")
	}

	return s
}
