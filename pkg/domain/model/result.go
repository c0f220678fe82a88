package model

// OperationResult is the typed, never-failing result of one repository API
// operation. Value is non-nil only when Outcome is OutcomeSuccess.
type OperationResult[T any] struct {
	Outcome Outcome
	Value   *T
	Message string
}

// Succeeded builds a successful result holding value.
func Succeeded[T any](value T) OperationResult[T] {
	return OperationResult[T]{
		Outcome: OutcomeSuccess,
		Value:   &value,
	}
}

// Failed builds a failed result. Passing OutcomeSuccess is a programming
// error and is reported as OutcomeUnknownTransportFault so the Value
// invariant still holds.
func Failed[T any](outcome Outcome, message string) OperationResult[T] {
	if outcome == OutcomeSuccess {
		outcome = OutcomeUnknownTransportFault
	}
	return OperationResult[T]{
		Outcome: outcome,
		Message: message,
	}
}

// IsSuccess reports whether the result carries a value.
func (r OperationResult[T]) IsSuccess() bool {
	return r.Outcome.IsSuccess() && r.Value != nil
}

// Get returns the value and whether it is present.
func (r OperationResult[T]) Get() (T, bool) {
	if !r.IsSuccess() {
		var zero T
		return zero, false
	}
	return *r.Value, true
}

// Map projects the value of a successful result with fn. A failed result
// keeps its Outcome and Message verbatim.
func Map[T, U any](r OperationResult[T], fn func(T) U) OperationResult[U] {
	v, ok := r.Get()
	if !ok {
		return OperationResult[U]{
			Outcome: r.Outcome,
			Message: r.Message,
		}
	}
	return Succeeded(fn(v))
}
