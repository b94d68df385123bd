package typelayout

import (
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/typedesc"
)

// Option configures an Inspect call.
type Option func(*options)

type options struct {
	recursive bool
}

// Recursive expands composite members in place, down to primitives and
// pointers.
func Recursive() Option {
	return func(o *options) { o.recursive = true }
}

// Inspect resolves name through src and computes its layout tree. Resolution
// failures are returned unchanged; see the errors package for the kinds the
// library itself produces.
func Inspect(src typedesc.Resolver, name string, opts ...Option) (*layout.Tree, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	desc, err := src.Resolve(name)
	if err != nil {
		return nil, err
	}
	return layout.Compute(desc, o.recursive)
}

// InspectOffsets resolves name through src and returns the offsets view:
// each top-level field's name and declared offset in declared order.
func InspectOffsets(src typedesc.Resolver, name string) ([]layout.FieldOffset, error) {
	desc, err := src.Resolve(name)
	if err != nil {
		return nil, err
	}
	return layout.Offsets(desc)
}
