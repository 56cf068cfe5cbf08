// Package modmap scans the server's modifier mapping for the bit masks of
// the three lock modifiers: Num Lock, Shift Lock, and Caps Lock.
package modmap

import (
	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/wire"
)

// Keysyms of the lock keys this package searches for.
const (
	KeysymNumLock   xutil.Keysym = 0xff7f
	KeysymCapsLock  xutil.Keysym = 0xffe5
	KeysymShiftLock xutil.Keysym = 0xffe6
)

// LockMasks fetches the modifier mapping and writes the modifier bit mask
// of each lock key through the corresponding pointer. A nil pointer skips
// that search; an output is written only when its key is found.
//
// The table is scanned slot-major: 8 modifier slots, each holding the
// reply's keycodes-per-modifier entries, with slot i mapping to mask
// 1 << i. The first matching slot for a key wins; matches in later slots
// never overwrite it, so the result is stable across calls against an
// unchanged mapping.
func LockMasks(c xutil.Conn, res xutil.KeycodeResolver, numLock, shiftLock, capsLock *uint16) {
	ck, err := c.Issue(wire.GetModifierMappingRequest())
	if err != nil {
		return
	}
	raw, err := c.Collect(ck)
	if err != nil {
		return
	}
	r, err := wire.ParseModifierMappingReply(raw)
	if err != nil {
		return
	}

	var kcNum, kcShift, kcCaps xutil.Keycode
	if numLock != nil {
		kcNum = res.Keycode(KeysymNumLock)
	}
	if shiftLock != nil {
		kcShift = res.Keycode(KeysymShiftLock)
	}
	if capsLock != nil {
		kcCaps = res.Keycode(KeysymCapsLock)
	}

	var haveNum, haveShift, haveCaps bool
	for slot := 0; slot < 8; slot++ {
		mask := uint16(1) << slot
		for entry := 0; entry < int(r.KeycodesPerModifier); entry++ {
			kc := r.Keycode(slot, entry)
			switch {
			case numLock != nil && !haveNum && kc == kcNum:
				*numLock = mask
				haveNum = true
			case shiftLock != nil && !haveShift && kc == kcShift:
				*shiftLock = mask
				haveShift = true
			case capsLock != nil && !haveCaps && kc == kcCaps:
				*capsLock = mask
				haveCaps = true
			}
		}
	}
}
