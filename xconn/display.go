package xconn

import (
	"strconv"
	"strings"

	"github.com/duskwm/xutil/errors"
)

// displayAddr is the dialable form of a display string.
type displayAddr struct {
	network string // "unix" or "tcp"
	addr    string
	screen  int
}

// x11SocketDir is where local display sockets live.
const x11SocketDir = "/tmp/.X11-unix"

// x11BasePort is the TCP port of display number 0.
const x11BasePort = 6000

// parseDisplay resolves a display string like ":0", ":1.0", or
// "host:2.1" to a dialable address. An empty host means the local unix
// socket for that display number.
func parseDisplay(display string) (displayAddr, error) {
	colon := strings.LastIndex(display, ":")
	if colon < 0 || colon == len(display)-1 {
		return displayAddr{}, errors.BadDisplay(display)
	}

	host := display[:colon]
	numPart := display[colon+1:]
	screen := 0

	if dot := strings.Index(numPart, "."); dot >= 0 {
		s, err := strconv.Atoi(numPart[dot+1:])
		if err != nil {
			return displayAddr{}, errors.BadDisplay(display)
		}
		screen = s
		numPart = numPart[:dot]
	}

	num, err := strconv.Atoi(numPart)
	if err != nil || num < 0 {
		return displayAddr{}, errors.BadDisplay(display)
	}

	if host == "" || host == "unix" {
		return displayAddr{
			network: "unix",
			addr:    x11SocketDir + "/X" + strconv.Itoa(num),
			screen:  screen,
		}, nil
	}
	return displayAddr{
		network: "tcp",
		addr:    host + ":" + strconv.Itoa(x11BasePort+num),
		screen:  screen,
	}, nil
}
