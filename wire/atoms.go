package wire

import "github.com/duskwm/xutil"

// Predefined atoms from the core protocol. Only the ones this library
// needs; everything else is interned by name at runtime.
const (
	AtomNone   xutil.Atom = 0 // also AnyPropertyType in GetProperty
	AtomString xutil.Atom = 31
	AtomWindow xutil.Atom = 33
	AtomWMName xutil.Atom = 39

	AtomWMClass        xutil.Atom = 67
	AtomWMTransientFor xutil.Atom = 68
)

// Core request opcodes used by this library.
const (
	OpInternAtom         = 16
	OpGetProperty        = 20
	OpGetModifierMapping = 119
)
