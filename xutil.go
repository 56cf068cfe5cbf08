package xutil

// Atom is a protocol identifier for an interned symbolic name.
// 0 is the reserved "no atom" sentinel.
type Atom uint32

// Window identifies a window on the server.
type Window uint32

// Keycode is a physical key number as reported by the server.
type Keycode uint8

// Keysym is a symbolic key identifier, independent of keyboard layout.
type Keysym uint32

// Cookie identifies an in-flight request on a connection. It is returned
// by Issue and redeemed exactly once with Collect.
type Cookie struct {
	Seq uint16
}

// Conn is the round-trip primitive every decoder in this module is built
// on. Issue sends an encoded request without blocking and returns a cookie
// for it; Collect blocks until the matching reply arrives and returns its
// raw bytes (the 32-byte header plus any extended body), or an error when
// the reply never arrived or the server answered with a protocol error.
//
// Decoders always collect synchronously before returning, so from the
// caller's perspective every operation on a Conn is blocking and
// sequential. Collect has no timeout of its own.
type Conn interface {
	Issue(req []byte) (Cookie, error)
	Collect(ck Cookie) ([]byte, error)
}

// KeycodeResolver maps a keysym to the keycode the current keyboard
// mapping assigns to it. Implementations return 0 when the symbol is not
// bound to any key.
type KeycodeResolver interface {
	Keycode(sym Keysym) Keycode
}
