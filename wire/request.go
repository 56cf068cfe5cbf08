package wire

import (
	"encoding/binary"

	"github.com/duskwm/xutil"
)

// pad4 returns n rounded up to the next multiple of 4.
func pad4(n int) int {
	return (n + 3) &^ 3
}

// InternAtomRequest encodes an InternAtom request for name.
// onlyIfExists asks the server not to create the atom when it is unknown.
func InternAtomRequest(name string, onlyIfExists bool) []byte {
	body := 8 + pad4(len(name))
	req := make([]byte, body)

	req[0] = OpInternAtom
	if onlyIfExists {
		req[1] = 1
	}
	binary.LittleEndian.PutUint16(req[2:4], uint16(body/4))
	binary.LittleEndian.PutUint16(req[4:6], uint16(len(name)))
	copy(req[8:], name)
	return req
}

// GetPropertyRequest encodes a GetProperty request. typ 0 means "any
// property type"; longOffset and longLength are in 32-bit units, as the
// protocol counts them.
func GetPropertyRequest(del bool, w xutil.Window, property, typ xutil.Atom, longOffset, longLength uint32) []byte {
	req := make([]byte, 24)

	req[0] = OpGetProperty
	if del {
		req[1] = 1
	}
	binary.LittleEndian.PutUint16(req[2:4], 6)
	binary.LittleEndian.PutUint32(req[4:8], uint32(w))
	binary.LittleEndian.PutUint32(req[8:12], uint32(property))
	binary.LittleEndian.PutUint32(req[12:16], uint32(typ))
	binary.LittleEndian.PutUint32(req[16:20], longOffset)
	binary.LittleEndian.PutUint32(req[20:24], longLength)
	return req
}

// GetModifierMappingRequest encodes a GetModifierMapping request.
func GetModifierMappingRequest() []byte {
	req := make([]byte, 4)
	req[0] = OpGetModifierMapping
	binary.LittleEndian.PutUint16(req[2:4], 1)
	return req
}
