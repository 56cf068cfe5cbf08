package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/duskwm/xutil"
)

// propertyReply builds a raw GetProperty reply frame for tests.
func propertyReply(format uint8, typ xutil.Atom, value []byte) []byte {
	ext := (len(value) + 3) / 4
	raw := make([]byte, FrameSize+4*ext)
	raw[0] = FrameReply
	raw[1] = format
	binary.LittleEndian.PutUint32(raw[4:8], uint32(ext))
	binary.LittleEndian.PutUint32(raw[8:12], uint32(typ))
	unit := int(format) / 8
	if unit == 0 {
		unit = 1
	}
	binary.LittleEndian.PutUint32(raw[16:20], uint32(len(value)/unit))
	copy(raw[FrameSize:], value)
	return raw
}

func TestParsePropertyReply(t *testing.T) {
	raw := propertyReply(8, AtomString, []byte("urxvt\x00URxvt\x00"))

	r, err := ParsePropertyReply(raw)
	if err != nil {
		t.Fatalf("ParsePropertyReply failed: %v", err)
	}
	if r.Format != 8 {
		t.Errorf("format = %d, want 8", r.Format)
	}
	if r.Type != AtomString {
		t.Errorf("type = %d, want %d", r.Type, AtomString)
	}
	if r.ValueLen != 12 {
		t.Errorf("value length = %d, want 12", r.ValueLen)
	}
	if !bytes.Equal(r.Value, []byte("urxvt\x00URxvt\x00")) {
		t.Errorf("value = %q", r.Value)
	}
}

func TestParsePropertyReply_Format32(t *testing.T) {
	value := make([]byte, 4)
	binary.LittleEndian.PutUint32(value, 0x2a0001)
	raw := propertyReply(32, AtomWindow, value)

	r, err := ParsePropertyReply(raw)
	if err != nil {
		t.Fatalf("ParsePropertyReply failed: %v", err)
	}
	if r.ValueLen != 1 {
		t.Errorf("value length = %d, want 1 element", r.ValueLen)
	}
	if len(r.Value) != 4 {
		t.Errorf("value byte length = %d, want 4", len(r.Value))
	}
}

func TestParsePropertyReply_Short(t *testing.T) {
	if _, err := ParsePropertyReply(make([]byte, 12)); err == nil {
		t.Error("short frame should fail")
	}
}

func TestParsePropertyReply_DeclaredLengthPastBuffer(t *testing.T) {
	raw := propertyReply(8, AtomString, []byte("abcd"))
	// Declare more value bytes than the frame carries.
	binary.LittleEndian.PutUint32(raw[16:20], 4096)

	if _, err := ParsePropertyReply(raw); err == nil {
		t.Error("oversized declared length should fail, not read past the buffer")
	}
}

func TestParsePropertyReply_NotAReply(t *testing.T) {
	raw := propertyReply(8, AtomString, []byte("abcd"))
	raw[0] = FrameError
	if _, err := ParsePropertyReply(raw); err == nil {
		t.Error("error frame should not parse as a reply")
	}
}

func TestParseInternAtomReply(t *testing.T) {
	raw := make([]byte, FrameSize)
	raw[0] = FrameReply
	binary.LittleEndian.PutUint32(raw[8:12], 512)

	r, err := ParseInternAtomReply(raw)
	if err != nil {
		t.Fatalf("ParseInternAtomReply failed: %v", err)
	}
	if r.Atom != 512 {
		t.Errorf("atom = %d, want 512", r.Atom)
	}
}

func TestParseModifierMappingReply(t *testing.T) {
	const kpm = 2
	raw := make([]byte, FrameSize+8*kpm)
	raw[0] = FrameReply
	raw[1] = kpm
	binary.LittleEndian.PutUint32(raw[4:8], (8*kpm)/4)
	raw[FrameSize+0] = 50 // slot 0, entry 0
	raw[FrameSize+9] = 77 // slot 4, entry 1

	r, err := ParseModifierMappingReply(raw)
	if err != nil {
		t.Fatalf("ParseModifierMappingReply failed: %v", err)
	}
	if r.KeycodesPerModifier != kpm {
		t.Errorf("keycodes per modifier = %d, want %d", r.KeycodesPerModifier, kpm)
	}
	if got := r.Keycode(0, 0); got != 50 {
		t.Errorf("slot 0 entry 0 = %d, want 50", got)
	}
	if got := r.Keycode(4, 1); got != 77 {
		t.Errorf("slot 4 entry 1 = %d, want 77", got)
	}
}

func TestParseModifierMappingReply_ShortTable(t *testing.T) {
	raw := make([]byte, FrameSize+8)
	raw[0] = FrameReply
	raw[1] = 4 // declares 32 keycodes, frame carries 8 bytes

	if _, err := ParseModifierMappingReply(raw); err == nil {
		t.Error("declared table past the buffer should fail")
	}
}

func TestFrameLen(t *testing.T) {
	head := make([]byte, FrameSize)
	head[0] = FrameError
	if n, err := FrameLen(head); err != nil || n != FrameSize {
		t.Errorf("error frame length = %d, %v", n, err)
	}

	head[0] = FrameReply
	binary.LittleEndian.PutUint32(head[4:8], 3)
	if n, err := FrameLen(head); err != nil || n != FrameSize+12 {
		t.Errorf("reply frame length = %d, %v", n, err)
	}

	if _, err := FrameLen(head[:8]); err == nil {
		t.Error("short head should fail")
	}
}
