package entity

import "errors"

var (
	// ErrEmptyPath is returned when a path has no segments.
	ErrEmptyPath = errors.New("navigation path has no segments")
	// ErrEmptySegmentName is returned for a segment such as "?a=1".
	ErrEmptySegmentName = errors.New("segment has no page name")
	// ErrMalformedQuery is returned when a segment query cannot be decoded.
	ErrMalformedQuery = errors.New("malformed segment query")
	// ErrPageNotFound is returned when no registered type matches a name.
	ErrPageNotFound = errors.New("page type not found")
	// ErrAmbiguousPage is returned when several registered types match a name.
	ErrAmbiguousPage = errors.New("page type name is ambiguous")
	// ErrInstantiation is returned when a page cannot be constructed.
	ErrInstantiation = errors.New("page instantiation failed")
	// ErrAlreadyMapped is returned when a page is mapped to a view-model twice.
	ErrAlreadyMapped = errors.New("page already mapped")
	// ErrNotRegistered is returned when the composition root has no provider.
	ErrNotRegistered = errors.New("type not registered")
	// ErrCompletionCancelled is returned by a completion that was cancelled.
	ErrCompletionCancelled = errors.New("completion cancelled")
	// ErrCompletionFaulted is stored when a completion is faulted without an error.
	ErrCompletionFaulted = errors.New("completion faulted")
)
