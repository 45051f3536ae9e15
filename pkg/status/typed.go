package status

// TypedResult couples a Result with a payload value of type T. The payload
// defaults to T's zero value and is independent of the message and outcome
// bookkeeping; callers must check the outcome code (or OK) before trusting
// it.
//
// Every Result mutator is re-exposed here with a *TypedResult[T] return so
// fluent chains keep access to the payload methods. The generic wrapper
// replaces covariant return types; there is no inheritance involved.
type TypedResult[T any] struct {
	Result
	value T
}

// NewTyped returns a TypedResult with CodeSuccess, no messages, and the
// zero value of T as payload.
func NewTyped[T any]() *TypedResult[T] {
	return &TypedResult[T]{Result: Result{code: CodeSuccess}}
}

// SetValue stores the payload and returns the receiver for chaining.
func (r *TypedResult[T]) SetValue(value T) *TypedResult[T] {
	r.value = value
	return r
}

// Value returns the stored payload.
func (r *TypedResult[T]) Value() T {
	return r.value
}

// AddInfo appends an info message; the outcome code is unchanged.
func (r *TypedResult[T]) AddInfo(text string) *TypedResult[T] {
	r.Result.AddInfo(text)
	return r
}

// AddWarning appends a warning message, escalating the code to CodeWarning
// unless the Result has already failed.
func (r *TypedResult[T]) AddWarning(text string) *TypedResult[T] {
	r.Result.AddWarning(text)
	return r
}

// AddError appends an error message and sets the code to CodeFailure.
func (r *TypedResult[T]) AddError(text string) *TypedResult[T] {
	r.Result.AddError(text)
	return r
}

// SetCode overrides the outcome code directly.
func (r *TypedResult[T]) SetCode(code Code) *TypedResult[T] {
	r.Result.SetCode(code)
	return r
}

// RemoveMessages deletes messages matching filter; SeverityAny removes all.
func (r *TypedResult[T]) RemoveMessages(filter Severity) *TypedResult[T] {
	r.Result.RemoveMessages(filter)
	return r
}

// Incorporate folds other into the receiver's Result. The payload is
// untouched.
func (r *TypedResult[T]) Incorporate(other *Result) *TypedResult[T] {
	r.Result.Incorporate(other)
	return r
}
