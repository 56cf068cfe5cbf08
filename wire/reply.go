package wire

import (
	"encoding/binary"

	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/errors"
)

// Frame type tags, the first byte of every 32-byte frame from the server.
const (
	FrameError uint8 = 0
	FrameReply uint8 = 1
)

// FrameSize is the fixed size of errors, events, and reply headers.
const FrameSize = 32

// FrameLen returns the total byte length of the frame whose 32-byte head
// is passed in: errors and events are always 32 bytes, replies extend by
// the length field at offset 4 (in 4-byte units).
func FrameLen(head []byte) (int, error) {
	if len(head) < FrameSize {
		return 0, errors.ShortRecord(errors.PhaseReply, "frame head", len(head), FrameSize)
	}
	if head[0] != FrameReply {
		return FrameSize, nil
	}
	ext := binary.LittleEndian.Uint32(head[4:8])
	return FrameSize + 4*int(ext), nil
}

// PropertyReply is a decoded GetProperty reply.
type PropertyReply struct {
	Value      []byte     // raw payload, exactly ValueLen format-units long
	Type       xutil.Atom // declared property type
	BytesAfter uint32
	ValueLen   uint32 // payload length in format-sized units
	Format     uint8  // 0, 8, 16, or 32
}

// ParsePropertyReply decodes a raw GetProperty reply. The payload slice
// references raw; callers that keep it past the reply's lifetime copy it.
func ParsePropertyReply(raw []byte) (*PropertyReply, error) {
	if len(raw) < FrameSize {
		return nil, errors.ShortRecord(errors.PhaseDecode, "property reply", len(raw), FrameSize)
	}
	if raw[0] != FrameReply {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("frame tag %d is not a reply", raw[0]).
			Build()
	}

	r := &PropertyReply{
		Format:     raw[1],
		Type:       xutil.Atom(binary.LittleEndian.Uint32(raw[8:12])),
		BytesAfter: binary.LittleEndian.Uint32(raw[12:16]),
		ValueLen:   binary.LittleEndian.Uint32(raw[16:20]),
	}

	unit := uint64(r.Format) / 8
	size := uint64(r.ValueLen) * unit
	if size > uint64(len(raw)-FrameSize) {
		return nil, errors.ShortRecord(errors.PhaseDecode, "property value", len(raw)-FrameSize, int(size))
	}
	r.Value = raw[FrameSize : FrameSize+size]
	return r, nil
}

// InternAtomReply is a decoded InternAtom reply.
type InternAtomReply struct {
	Atom xutil.Atom
}

// ParseInternAtomReply decodes a raw InternAtom reply.
func ParseInternAtomReply(raw []byte) (*InternAtomReply, error) {
	if len(raw) < FrameSize {
		return nil, errors.ShortRecord(errors.PhaseDecode, "intern atom reply", len(raw), FrameSize)
	}
	if raw[0] != FrameReply {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("frame tag %d is not a reply", raw[0]).
			Build()
	}
	return &InternAtomReply{
		Atom: xutil.Atom(binary.LittleEndian.Uint32(raw[8:12])),
	}, nil
}

// ModifierMappingReply is a decoded GetModifierMapping reply: the
// keycodes-per-modifier count and the 8×N keycode table, slot-major.
type ModifierMappingReply struct {
	Keycodes            []xutil.Keycode
	KeycodesPerModifier uint8
}

// Keycode returns the entry for the given modifier slot (0-7).
func (r *ModifierMappingReply) Keycode(slot, entry int) xutil.Keycode {
	return r.Keycodes[slot*int(r.KeycodesPerModifier)+entry]
}

// ParseModifierMappingReply decodes a raw GetModifierMapping reply.
func ParseModifierMappingReply(raw []byte) (*ModifierMappingReply, error) {
	if len(raw) < FrameSize {
		return nil, errors.ShortRecord(errors.PhaseDecode, "modifier mapping reply", len(raw), FrameSize)
	}
	if raw[0] != FrameReply {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("frame tag %d is not a reply", raw[0]).
			Build()
	}

	kpm := raw[1]
	table := 8 * int(kpm)
	if table > len(raw)-FrameSize {
		return nil, errors.ShortRecord(errors.PhaseDecode, "modifier keycode table", len(raw)-FrameSize, table)
	}

	r := &ModifierMappingReply{
		KeycodesPerModifier: kpm,
		Keycodes:            make([]xutil.Keycode, table),
	}
	for i := 0; i < table; i++ {
		r.Keycodes[i] = xutil.Keycode(raw[FrameSize+i])
	}
	return r, nil
}
