// Package mddserr collects the sentinel errors shared across the typed
// block vector and its sibling structures, in the same style the teacher
// declares package-scoped sentinels (schemamanager.ErrRuntimeBlockInfoTypeIsIncorrect,
// manager/cache.ErrNoFreeEntries): plain errors.New values, tested with
// errors.Is, wrapped with fmt.Errorf("...: %w", err) where extra context helps.
package mddserr

import "errors"

var (
	// ErrOutOfRange is returned when a row or span argument falls outside
	// [0, size) of the vector, or when start > end in a range argument.
	ErrOutOfRange = errors.New("mdds: index out of range")

	// ErrTypeMismatch is returned when an element-block primitive is
	// invoked with a value whose category differs from the block's
	// category. This signals an internal invariant violation.
	ErrTypeMismatch = errors.New("mdds: type mismatch")

	// ErrAllocation names the allocation-failure error kind. No function
	// in this module returns it: a failed Go allocation is a runtime
	// fatal error, not a returned error. The library does not roll back
	// multi-step mutations.
	ErrAllocation = errors.New("mdds: allocation failed")

	// ErrInvalidArgument is returned by composite operations (the
	// collection view adapter) for malformed input, e.g. grouping
	// vectors of differing lengths or an all-empty group.
	ErrInvalidArgument = errors.New("mdds: invalid argument")
)
