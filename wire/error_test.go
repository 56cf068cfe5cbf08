package wire

import (
	"encoding/binary"
	"testing"
)

func errorRecord(code, major uint8, seq uint16) []byte {
	raw := make([]byte, FrameSize)
	raw[0] = FrameError
	raw[ErrorCodeOffset] = code
	binary.LittleEndian.PutUint16(raw[SequenceOffset:], seq)
	binary.LittleEndian.PutUint32(raw[BadValueOffset:], 0xdeadbeef)
	raw[MajorOpcodeOffset] = major
	return raw
}

func TestParseErrorRecord(t *testing.T) {
	r, err := ParseErrorRecord(errorRecord(3, 20, 41))
	if err != nil {
		t.Fatalf("ParseErrorRecord failed: %v", err)
	}
	if r.Code != 3 {
		t.Errorf("code = %d, want 3", r.Code)
	}
	if r.Major != 20 {
		t.Errorf("major = %d, want 20", r.Major)
	}
	if r.Sequence != 41 {
		t.Errorf("sequence = %d, want 41", r.Sequence)
	}
	if r.BadValue != 0xdeadbeef {
		t.Errorf("bad value = %#x", r.BadValue)
	}
}

func TestParseErrorRecord_MajorAtOffset10(t *testing.T) {
	// The opcode sits in what the generic layout calls padding; make sure
	// it is read from offset 10 and nowhere else.
	raw := errorRecord(1, 0, 0)
	for i := range raw {
		if i != 0 && i != MajorOpcodeOffset && i != ErrorCodeOffset {
			raw[i] = 0xee
		}
	}
	raw[MajorOpcodeOffset] = 120

	r, err := ParseErrorRecord(raw)
	if err != nil {
		t.Fatalf("ParseErrorRecord failed: %v", err)
	}
	if r.Major != 120 {
		t.Errorf("major = %d, want 120", r.Major)
	}
}

func TestParseErrorRecord_NotAnError(t *testing.T) {
	raw := errorRecord(3, 20, 0)
	raw[0] = FrameReply
	if _, err := ParseErrorRecord(raw); err == nil {
		t.Error("reply frame should not parse as an error record")
	}
}

func TestParseErrorRecord_Short(t *testing.T) {
	if _, err := ParseErrorRecord(make([]byte, 10)); err == nil {
		t.Error("short record should fail")
	}
}
