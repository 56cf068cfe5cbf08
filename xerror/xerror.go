// Package xerror turns raw protocol error records into labeled
// descriptions and manages per-code error handlers.
package xerror

import (
	"fmt"

	"github.com/duskwm/xutil/wire"
)

// ProtocolError describes a decoded protocol error. Labels hold either a
// human-readable name from the core tables or, for extension codes the
// tables do not cover, the code's decimal numeral.
type ProtocolError struct {
	RequestLabel string
	ErrorLabel   string
	RequestCode  uint8
}

func (e *ProtocolError) String() string {
	return fmt.Sprintf("%s error on %s request", e.ErrorLabel, e.RequestLabel)
}

// Decode interprets a raw generic error record. It returns nil when the
// record's tag marks it as anything other than an error, or when the
// record is shorter than the fixed 32-byte layout.
//
// The request opcode is read from its fixed position inside the record
// (wire.MajorOpcodeOffset); both it and the error code degrade to decimal
// labels when they fall outside the core tables.
func Decode(raw []byte) *ProtocolError {
	rec, err := wire.ParseErrorRecord(raw)
	if err != nil {
		return nil
	}
	return &ProtocolError{
		RequestCode:  rec.Major,
		RequestLabel: wire.RequestLabel(rec.Major),
		ErrorLabel:   wire.ErrorLabel(rec.Code),
	}
}

// Handler consumes a raw error record dispatched by a connection.
type Handler func(raw []byte)

// HandlerTable registers a handler for one error code, replacing any
// earlier registration for that code.
type HandlerTable interface {
	SetErrorHandler(code uint8, h Handler)
}

// handlerCodes is the size of a dispatch table: one slot per possible
// error code byte.
const handlerCodes = 256

// InstallCatchAll registers h for every possible error code. Install it
// before any specific handlers: registration order matters, and a later
// SetErrorHandler for an individual code overrides the blanket one.
func InstallCatchAll(t HandlerTable, h Handler) {
	for code := 0; code < handlerCodes; code++ {
		t.SetErrorHandler(uint8(code), h)
	}
}
