// Package status provides a return-value type that bundles a tri-state
// outcome code with an ordered log of diagnostic messages, so callers can
// report detailed status as data instead of using errors for control flow.
//
// A Result starts out successful. Recording a warning escalates the code to
// CodeWarning unless the Result already failed; recording an error always
// escalates to CodeFailure. The code never moves back toward success except
// through an explicit SetCode. Incorporate folds one Result into another:
// messages are appended in order and the receiver keeps the worse of the two
// codes.
//
// Results are plain mutable values meant for synchronous, single-owner call
// chains. They provide no internal locking; callers sharing a Result across
// goroutines must serialize access themselves.
package status

import (
	"fmt"
	"strings"
)

// Result accumulates an outcome code and an ordered list of diagnostic
// messages. The zero value is not ready for use; construct with New.
type Result struct {
	code     Code
	messages []Message
}

// New returns a Result with no messages and CodeSuccess, so an operation
// that records nothing reports success.
func New() *Result {
	return &Result{code: CodeSuccess}
}

// AddInfo appends an info message. The outcome code is unchanged. Returns
// the receiver for chaining.
func (r *Result) AddInfo(text string) *Result {
	r.messages = append(r.messages, Message{Severity: SeverityInfo, Text: text})
	return r
}

// AddWarning appends a warning message and escalates the code to
// CodeWarning unless the Result has already failed.
func (r *Result) AddWarning(text string) *Result {
	r.messages = append(r.messages, Message{Severity: SeverityWarning, Text: text})
	if r.code != CodeFailure {
		r.code = CodeWarning
	}
	return r
}

// AddError appends an error message and unconditionally sets the code to
// CodeFailure.
func (r *Result) AddError(text string) *Result {
	r.messages = append(r.messages, Message{Severity: SeverityError, Text: text})
	r.code = CodeFailure
	return r
}

// SetCode overrides the outcome code directly, bypassing the escalation
// rules. Intended for explicit initialization; it can move the code in any
// direction.
func (r *Result) SetCode(code Code) *Result {
	r.code = code
	return r
}

// RemoveMessages deletes every message whose severity equals filter, or all
// messages when filter is SeverityAny. The outcome code is left as
// previously escalated; it is not recomputed from the surviving messages.
func (r *Result) RemoveMessages(filter Severity) *Result {
	if filter == SeverityAny {
		r.messages = nil
		return r
	}
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.Severity != filter {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return r
}

// LastInfo returns the most recently appended info message, if any.
func (r *Result) LastInfo() (Message, bool) {
	return r.last(SeverityInfo)
}

// LastWarning returns the most recently appended warning message, if any.
func (r *Result) LastWarning() (Message, bool) {
	return r.last(SeverityWarning)
}

// LastError returns the most recently appended error message, if any.
func (r *Result) LastError() (Message, bool) {
	return r.last(SeverityError)
}

func (r *Result) last(severity Severity) (Message, bool) {
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].Severity == severity {
			return r.messages[i], true
		}
	}
	return Message{}, false
}

// Incorporate folds other into the receiver: every message of other is
// copied and appended after the receiver's existing messages, preserving
// order, and the receiver's code becomes the worse of the two. other is
// never modified; a nil other is a no-op.
func (r *Result) Incorporate(other *Result) *Result {
	if other == nil {
		return r
	}
	r.messages = append(r.messages, other.messages...)
	r.code = worseOf(r.code, other.code)
	return r
}

// OK reports whether the outcome code is exactly CodeSuccess. A Result that
// carries warnings is not OK; callers that want to tolerate warnings should
// check Failed instead.
func (r *Result) OK() bool {
	return r.code == CodeSuccess
}

// Failed reports whether the outcome code is CodeFailure.
func (r *Result) Failed() bool {
	return r.code == CodeFailure
}

// Code returns the current outcome code.
func (r *Result) Code() Code {
	return r.code
}

// Messages returns a copy of the message list in insertion order.
func (r *Result) Messages() []Message {
	if len(r.messages) == 0 {
		return nil
	}
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// MessagesBySeverity returns a copy of the messages matching filter, in
// insertion order. SeverityAny matches everything.
func (r *Result) MessagesBySeverity(filter Severity) []Message {
	var out []Message
	for _, m := range r.messages {
		if filter == SeverityAny || m.Severity == filter {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of recorded messages.
func (r *Result) Len() int {
	return len(r.messages)
}

// String renders a one-line summary: the code followed by the messages in
// order.
func (r *Result) String() string {
	if len(r.messages) == 0 {
		return r.code.String()
	}
	parts := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		parts = append(parts, m.String())
	}
	return fmt.Sprintf("%s [%s]", r.code, strings.Join(parts, "; "))
}
