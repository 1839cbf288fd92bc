package notifier

import "context"

type noopDispatcher struct{}

// NewNoop creates a Dispatcher which drops everything. Used by maintenance
// commands which must not wake users up.
func NewNoop() Dispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) Notify(_ context.Context, _ Intent) error            { return nil }
func (noopDispatcher) UpdateContent(_ context.Context, _, _ string) error  { return nil }
func (noopDispatcher) DeleteByReference(_ context.Context, _ string) error { return nil }
func (noopDispatcher) PublishEvent(_ context.Context, _, _ string) error   { return nil }
