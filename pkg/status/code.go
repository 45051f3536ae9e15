package status

// Code is the overall verdict of an operation. It is kept distinct from
// Severity on purpose: a message's severity says what kind of note was
// recorded, while the code says how the operation as a whole went.
type Code int

const (
	// CodeUnknown is the uninitialized sentinel. A freshly constructed
	// Result never carries it; it can only appear through an explicit
	// SetCode call.
	CodeUnknown Code = iota
	// CodeSuccess means the operation completed without problems.
	CodeSuccess
	// CodeWarning means the operation completed but recorded at least one
	// warning.
	CodeWarning
	// CodeFailure means the operation failed.
	CodeFailure
)

// String returns the lowercase name of the code.
func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeSuccess:
		return "success"
	case CodeWarning:
		return "warning"
	case CodeFailure:
		return "failure"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// worseOf returns the worse of two codes under the escalation order
// Unknown < Success < Warning < Failure. Unknown ranks below Success so
// incorporating a Result that was explicitly reset to Unknown never
// escalates the receiver.
func worseOf(a, b Code) Code {
	if rank(b) > rank(a) {
		return b
	}
	return a
}

func rank(c Code) int {
	switch c {
	case CodeSuccess:
		return 1
	case CodeWarning:
		return 2
	case CodeFailure:
		return 3
	default:
		return 0
	}
}
