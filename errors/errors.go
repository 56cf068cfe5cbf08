package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConnect Phase = "connect" // display setup handshake
	PhaseRequest Phase = "request" // encoding and sending a request
	PhaseReply   Phase = "reply"   // collecting a reply from the wire
	PhaseDecode  Phase = "decode"  // interpreting a collected reply
)

// Kind categorizes the error
type Kind string

const (
	KindAbsentReply   Kind = "absent_reply"
	KindErrorReply    Kind = "error_reply"
	KindBadFormat     Kind = "bad_format"
	KindBadType       Kind = "bad_type"
	KindEmptyValue    Kind = "empty_value"
	KindShortRecord   Kind = "short_record"
	KindShortWrite    Kind = "short_write"
	KindBadDisplay    Kind = "bad_display"
	KindSetupRefused  Kind = "setup_refused"
	KindOverflow      Kind = "overflow"
	KindInvalidInput  Kind = "invalid_input"
	KindClosed        Kind = "closed"
	KindUnknownCookie Kind = "unknown_cookie"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AbsentReply creates an error for a reply that never arrived
func AbsentReply(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAbsentReply,
		Detail: fmt.Sprintf("no reply for %s", what),
		Cause:  cause,
	}
}

// ShortRecord creates an error for a wire record shorter than its layout
func ShortRecord(phase Phase, what string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortRecord,
		Detail: fmt.Sprintf("%s truncated: got %d bytes, want %d", what, got, want),
		Value:  got,
	}
}

// BadFormat creates an error for a reply with an unexpected format tag
func BadFormat(path []string, got, want uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadFormat,
		Path:   path,
		Detail: fmt.Sprintf("format %d, want %d", got, want),
		Value:  got,
	}
}

// BadType creates an error for a reply whose declared type does not match
func BadType(path []string, got uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadType,
		Path:   path,
		Detail: fmt.Sprintf("unexpected property type %d", got),
		Value:  got,
	}
}

// EmptyValue creates an error for a reply carrying no payload
func EmptyValue(path []string) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindEmptyValue,
		Path:  path,
	}
}

// BadDisplay creates an error for an unparseable display string
func BadDisplay(display string) *Error {
	return &Error{
		Phase:  PhaseConnect,
		Kind:   KindBadDisplay,
		Detail: fmt.Sprintf("cannot parse display %q", display),
		Value:  display,
	}
}

// SetupRefused creates an error for a rejected connection handshake
func SetupRefused(reason string) *Error {
	return &Error{
		Phase:  PhaseConnect,
		Kind:   KindSetupRefused,
		Detail: reason,
	}
}

// ErrorReply creates an error for a request the server answered with a
// protocol error instead of a reply
func ErrorReply(code, major uint8, seq uint16) *Error {
	return &Error{
		Phase:  PhaseReply,
		Kind:   KindErrorReply,
		Detail: fmt.Sprintf("error code %d for opcode %d (seq %d)", code, major, seq),
		Value:  code,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for operations on a closed connection
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "connection closed",
	}
}

// UnknownCookie creates an error for collecting a cookie this connection
// never issued or has already redeemed
func UnknownCookie(seq uint16) *Error {
	return &Error{
		Phase:  PhaseReply,
		Kind:   KindUnknownCookie,
		Detail: fmt.Sprintf("no pending request with sequence %d", seq),
		Value:  seq,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
