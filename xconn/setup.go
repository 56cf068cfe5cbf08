package xconn

import (
	"encoding/binary"
	"io"

	"github.com/duskwm/xutil/errors"
)

// Setup holds the parts of the server's setup reply this library keeps.
type Setup struct {
	ReleaseNumber  uint32
	ResourceIDBase uint32
	ResourceIDMask uint32
	ProtocolMajor  uint16
	ProtocolMinor  uint16
}

// setup status codes, the first byte of the server's answer.
const (
	setupFailed       = 0
	setupSuccess      = 1
	setupAuthenticate = 2
)

// handshake negotiates the connection on an open socket: it announces
// little-endian byte order and protocol 11.0 with no authorization data,
// then parses the server's answer.
func handshake(rw io.ReadWriter) (*Setup, error) {
	req := make([]byte, 12)
	req[0] = 'l' // little-endian
	binary.LittleEndian.PutUint16(req[2:4], 11)
	if _, err := rw.Write(req); err != nil {
		return nil, errors.Wrap(errors.PhaseConnect, errors.KindShortWrite, err, "send setup request")
	}

	prefix := make([]byte, 8)
	if _, err := io.ReadFull(rw, prefix); err != nil {
		return nil, errors.Wrap(errors.PhaseConnect, errors.KindAbsentReply, err, "read setup prefix")
	}

	additional := 4 * int(binary.LittleEndian.Uint16(prefix[6:8]))
	payload := make([]byte, additional)
	if _, err := io.ReadFull(rw, payload); err != nil {
		return nil, errors.Wrap(errors.PhaseConnect, errors.KindAbsentReply, err, "read setup payload")
	}

	switch prefix[0] {
	case setupSuccess:
	case setupFailed:
		reasonLen := int(prefix[1])
		if reasonLen > len(payload) {
			reasonLen = len(payload)
		}
		return nil, errors.SetupRefused(string(payload[:reasonLen]))
	case setupAuthenticate:
		return nil, errors.SetupRefused("server demands authentication")
	default:
		return nil, errors.SetupRefused("unrecognized setup status")
	}

	s := &Setup{
		ProtocolMajor: binary.LittleEndian.Uint16(prefix[2:4]),
		ProtocolMinor: binary.LittleEndian.Uint16(prefix[4:6]),
	}
	if len(payload) >= 12 {
		s.ReleaseNumber = binary.LittleEndian.Uint32(payload[0:4])
		s.ResourceIDBase = binary.LittleEndian.Uint32(payload[4:8])
		s.ResourceIDMask = binary.LittleEndian.Uint32(payload[8:12])
	}
	return s, nil
}
