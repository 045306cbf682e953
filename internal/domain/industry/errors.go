package industry

import "fmt"

// ErrInvalidInput indicates a caller bug: out-of-range runs or research
// levels, or a malformed identifier. Never retried.
type ErrInvalidInput struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input for %s (%v): %s", e.Field, e.Value, e.Message)
}

// ErrNotFound indicates the requested root item has no blueprint for the
// requested activity. Surfaced to the user as "item not found".
type ErrNotFound struct {
	ItemID   int64
	Activity Activity
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no %s blueprint found for item %d", e.Activity, e.ItemID)
}

// ErrCyclicDependency indicates corrupt catalog data: a blueprint chain
// that references itself transitively. Fatal, never silently truncated.
type ErrCyclicDependency struct {
	ItemID int64
	Chain  []int64
}

func (e *ErrCyclicDependency) Error() string {
	return fmt.Sprintf("cyclic blueprint dependency detected for item %d: %v", e.ItemID, e.Chain)
}

// ErrNoInventionData indicates the requested item is not inventable:
// the catalog has no invention entry for it.
type ErrNoInventionData struct {
	ItemID int64
}

func (e *ErrNoInventionData) Error() string {
	return fmt.Sprintf("item %d is not inventable: no invention data in catalog", e.ItemID)
}

// ErrCollaborator wraps a failure from an injected catalog or price
// collaborator. The engine propagates it without retrying; retry policy,
// if any, belongs to the collaborator.
type ErrCollaborator struct {
	Operation string
	Err       error
}

func (e *ErrCollaborator) Error() string {
	return fmt.Sprintf("collaborator call %s failed: %v", e.Operation, e.Err)
}

func (e *ErrCollaborator) Unwrap() error {
	return e.Err
}
