package wire

import (
	"encoding/binary"

	"github.com/duskwm/xutil/errors"
)

// Generic error record layout. The record is a fixed 32-byte frame:
//
//	offset 0   u8   tag, always 0 for errors
//	offset 1   u8   error code
//	offset 2   u16  sequence number of the failed request
//	offset 4   u32  bad resource id / value (meaning depends on the code)
//	offset 8   u16  minor opcode
//	offset 10  u8   major opcode
//	offset 11       pad to 32
//
// MajorOpcodeOffset is a wire-format constant, not an implementation
// choice: in the generic layout the byte at offset 10 is declared as
// padding, but every request-specific error encoding places the major
// opcode there, so decoding reads it from the generic record directly.
const (
	ErrorCodeOffset   = 1
	SequenceOffset    = 2
	BadValueOffset    = 4
	MinorOpcodeOffset = 8
	MajorOpcodeOffset = 10
)

// ErrorRecord is a decoded generic error frame.
type ErrorRecord struct {
	BadValue uint32
	Sequence uint16
	Minor    uint16
	Code     uint8
	Major    uint8
}

// ParseErrorRecord decodes a generic error record. It returns an error
// when the frame is short or its tag marks it as something other than an
// error.
func ParseErrorRecord(raw []byte) (*ErrorRecord, error) {
	if len(raw) < FrameSize {
		return nil, errors.ShortRecord(errors.PhaseDecode, "error record", len(raw), FrameSize)
	}
	if raw[0] != FrameError {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("frame tag %d is not an error", raw[0]).
			Value(raw[0]).
			Build()
	}
	return &ErrorRecord{
		Code:     raw[ErrorCodeOffset],
		Sequence: binary.LittleEndian.Uint16(raw[SequenceOffset : SequenceOffset+2]),
		BadValue: binary.LittleEndian.Uint32(raw[BadValueOffset : BadValueOffset+4]),
		Minor:    binary.LittleEndian.Uint16(raw[MinorOpcodeOffset : MinorOpcodeOffset+2]),
		Major:    raw[MajorOpcodeOffset],
	}, nil
}
