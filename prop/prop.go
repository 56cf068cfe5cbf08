// Package prop decodes window properties into typed values: interned
// atoms, text properties, class hints, and transient-window references.
//
// Every function issues its own request on the given Conn and blocks on
// the matching reply before returning. Failure is reported through the
// return value (a zero atom, a false boolean, a nil hint), never through
// a panic or an error value; the caller decides whether to retry or
// escalate.
package prop

import (
	"bytes"
	"encoding/binary"

	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/wire"
)

// getPropertyMaxLen is the long-length this library requests for text
// properties, matching the wire constant window managers conventionally
// use for unbounded text fetches.
const getPropertyMaxLen = 1000000

// classHintMaxLen bounds a WM_CLASS fetch.
const classHintMaxLen = 2048

// InternAtom resolves name to its atom, creating it on the server when it
// does not exist yet. It returns 0, the "no atom" sentinel, when the
// reply is absent or malformed.
//
// Every call is a fresh round trip. Nothing is cached: two calls with the
// same name perform two lookups and rely on the server for a stable
// answer.
func InternAtom(c xutil.Conn, name string) xutil.Atom {
	ck, err := c.Issue(wire.InternAtomRequest(name, false))
	if err != nil {
		return wire.AtomNone
	}
	raw, err := c.Collect(ck)
	if err != nil {
		return wire.AtomNone
	}
	r, err := wire.ParseInternAtomReply(raw)
	if err != nil {
		return wire.AtomNone
	}
	return r.Atom
}

// GetTextProperty fetches the named property of w and copies its payload
// into buf, NUL-terminated.
//
// It reports false without a round trip when buf is empty, and false when
// the reply is absent, carries no data, or is not 8-bit formatted. The
// payload is copied only when the declared type is STRING or the interned
// UTF8_STRING atom (re-resolved on every call); bytes are copied verbatim
// with no encoding conversion. When the payload does not fit, it is
// truncated to len(buf)-2 bytes with the terminator at len(buf)-1, so at
// most len(buf)-1 bytes of data are ever visible.
//
// A true return means a structurally valid reply was obtained, not that
// buf was written: a reply whose type is neither string form leaves buf
// untouched and still reports true.
func GetTextProperty(c xutil.Conn, w xutil.Window, property xutil.Atom, buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	ck, err := c.Issue(wire.GetPropertyRequest(false, w, property, wire.AtomNone, 0, getPropertyMaxLen))
	if err != nil {
		return false
	}
	raw, err := c.Collect(ck)
	if err != nil {
		return false
	}
	r, err := wire.ParsePropertyReply(raw)
	if err != nil || r.ValueLen == 0 || r.Format != 8 {
		return false
	}

	if r.Type == wire.AtomString || r.Type == InternAtom(c, "UTF8_STRING") {
		n := len(r.Value)
		if n < len(buf)-1 {
			copy(buf, r.Value)
			buf[n] = 0
		} else {
			keep := len(buf) - 2
			if keep < 0 {
				keep = 0
			}
			copy(buf, r.Value[:keep])
			buf[len(buf)-1] = 0
		}
	}

	return true
}

// GetTransientForHint fetches the WM_TRANSIENT_FOR property of w: the
// window this one is transient for. It reports (0, false) when the reply
// is absent, not of type WINDOW, not 32-bit formatted, or empty.
func GetTransientForHint(c xutil.Conn, w xutil.Window) (xutil.Window, bool) {
	ck, err := c.Issue(wire.GetPropertyRequest(false, w, wire.AtomWMTransientFor, wire.AtomWindow, 0, 1))
	if err != nil {
		return 0, false
	}
	raw, err := c.Collect(ck)
	if err != nil {
		return 0, false
	}
	r, err := wire.ParsePropertyReply(raw)
	if err != nil || r.Type != wire.AtomWindow || r.Format != 32 || r.ValueLen == 0 {
		return 0, false
	}
	return xutil.Window(binary.LittleEndian.Uint32(r.Value[:4])), true
}

// ClassHint is a window's WM_CLASS pair. Instance names the particular
// running instance, Class the general application class. Both are copied
// out of the reply; a ClassHint never aliases wire buffers.
type ClassHint struct {
	Instance string
	Class    string
}

// GetClassHint fetches and splits the WM_CLASS property of w. It returns
// nil when the reply is absent, not of type STRING, or not 8-bit
// formatted.
//
// The payload is two NUL-terminated runs back to back. A payload without
// a second terminator yields an empty Class rather than an error; the
// scan never reads past the declared payload length.
func GetClassHint(c xutil.Conn, w xutil.Window) *ClassHint {
	ck, err := c.Issue(wire.GetPropertyRequest(false, w, wire.AtomWMClass, wire.AtomString, 0, classHintMaxLen))
	if err != nil {
		return nil
	}
	raw, err := c.Collect(ck)
	if err != nil {
		return nil
	}
	r, err := wire.ParsePropertyReply(raw)
	if err != nil || r.Type != wire.AtomString || r.Format != 8 {
		return nil
	}

	data := r.Value
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		i = len(data)
	}
	rest := data[min(i+1, len(data)):]
	j := bytes.IndexByte(rest, 0)
	if j < 0 {
		j = len(rest)
	}

	return &ClassHint{
		Instance: string(data[:i]),
		Class:    string(rest[:j]),
	}
}
