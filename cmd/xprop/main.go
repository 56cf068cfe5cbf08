// Command xprop connects to a display and decodes the hint properties of
// a window: WM_CLASS, the transient-for reference, name text properties,
// and the lock modifier masks. Protocol errors are decoded and printed
// with their labels instead of raw codes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/modmap"
	"github.com/duskwm/xutil/prop"
	"github.com/duskwm/xutil/wire"
	"github.com/duskwm/xutil/xconn"
	"github.com/duskwm/xutil/xerror"
)

func main() {
	var (
		display     = flag.String("display", os.Getenv("DISPLAY"), "Display to connect to")
		windowArg   = flag.String("window", "", "Window id (decimal or 0x hex)")
		configPath  = flag.String("config", "", "Path to TOML config file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cfg.Display == "" {
		cfg.Display = *display
	}

	if err := setupLogging(cfg.LogLevel, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *windowArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: xprop -window <id> [-display :0] [-config file.toml]")
		fmt.Fprintln(os.Stderr, "       xprop -i  (interactive mode)")
		os.Exit(1)
	}
	win, err := parseWindow(*windowArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, win); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string, verbose bool) error {
	if verbose {
		level = "debug"
	}
	zl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	c := zap.NewDevelopmentConfig()
	c.Level = zl
	log, err := c.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	xconn.SetLogger(log)
	return nil
}

func parseWindow(s string) (xutil.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("parse window id %q: %w", s, err)
	}
	return xutil.Window(id), nil
}

func run(cfg config, win xutil.Window) error {
	conn, err := xconn.Dial(cfg.Display)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Catch-all first; collaborators may override individual codes later.
	xerror.InstallCatchAll(conn, func(raw []byte) {
		if e := xerror.Decode(raw); e != nil {
			fmt.Fprintf(os.Stderr, "x error: %s\n", e)
		}
	})

	snap := snapshot(conn, cfg, win)
	fmt.Print(snap.render())
	return nil
}

// windowSnapshot is one window's decoded hints.
type windowSnapshot struct {
	win       xutil.Window
	class     *prop.ClassHint
	transient xutil.Window
	hasTrans  bool
	name      string
	hasName   bool
	netName   string
	hasNet    bool
	numLock   uint16
	shiftLock uint16
	capsLock  uint16
}

func snapshot(conn xutil.Conn, cfg config, win xutil.Window) *windowSnapshot {
	s := &windowSnapshot{win: win}

	s.class = prop.GetClassHint(conn, win)
	s.transient, s.hasTrans = prop.GetTransientForHint(conn, win)

	buf := make([]byte, cfg.TextBufferSize)
	if prop.GetTextProperty(conn, win, wire.AtomWMName, buf) {
		s.name, s.hasName = cString(buf), true
	}
	if a := prop.InternAtom(conn, "_NET_WM_NAME"); a != 0 {
		buf = make([]byte, cfg.TextBufferSize)
		if prop.GetTextProperty(conn, win, a, buf) {
			s.netName, s.hasNet = cString(buf), true
		}
	}

	modmap.LockMasks(conn, staticResolver{cfg.Keycodes}, &s.numLock, &s.shiftLock, &s.capsLock)
	return s
}

func (s *windowSnapshot) render() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "window %#x\n", uint32(s.win))
	if s.class != nil {
		fmt.Fprintf(&b, "  WM_CLASS: %q, %q\n", s.class.Instance, s.class.Class)
	}
	if s.hasName {
		fmt.Fprintf(&b, "  WM_NAME: %q\n", s.name)
	}
	if s.hasNet {
		fmt.Fprintf(&b, "  _NET_WM_NAME: %q\n", s.netName)
	}
	if s.hasTrans {
		fmt.Fprintf(&b, "  WM_TRANSIENT_FOR: %#x\n", uint32(s.transient))
	}
	fmt.Fprintf(&b, "  lock masks: num %#x shift %#x caps %#x\n", s.numLock, s.shiftLock, s.capsLock)
	return b.String()
}

// cString trims a NUL-terminated buffer to its string value.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
