package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/duskwm/xutil/modmap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xprop.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
display = ":1"
log_level = "debug"
text_buffer_size = 512

[keycodes]
num_lock = 77
caps_lock = 66
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Display != ":1" {
		t.Errorf("display = %q", cfg.Display)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.TextBufferSize != 512 {
		t.Errorf("text buffer size = %d", cfg.TextBufferSize)
	}
	if cfg.Keycodes.NumLock != 77 || cfg.Keycodes.CapsLock != 66 || cfg.Keycodes.ShiftLock != 0 {
		t.Errorf("keycodes = %+v", cfg.Keycodes)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.TextBufferSize != 256 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad level":   `log_level = "chatty"`,
		"tiny buffer": `text_buffer_size = 1`,
		"bad toml":    `display = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, body)); err == nil {
				t.Error("loadConfig should fail")
			}
		})
	}
}

func TestStaticResolver(t *testing.T) {
	r := staticResolver{keycodes: keycodesConfig{NumLock: 77, CapsLock: 66}}

	if got := r.Keycode(modmap.KeysymNumLock); got != 77 {
		t.Errorf("num lock keycode = %d, want 77", got)
	}
	if got := r.Keycode(modmap.KeysymCapsLock); got != 66 {
		t.Errorf("caps lock keycode = %d, want 66", got)
	}
	if got := r.Keycode(modmap.KeysymShiftLock); got != 0 {
		t.Errorf("unbound shift lock keycode = %d, want 0", got)
	}
	if got := r.Keycode(0x61); got != 0 {
		t.Errorf("unrelated keysym keycode = %d, want 0", got)
	}
}

func TestParseWindow(t *testing.T) {
	if w, err := parseWindow("0x2a0007"); err != nil || w != 0x2a0007 {
		t.Errorf("hex window = %#x, %v", w, err)
	}
	if w, err := parseWindow("42"); err != nil || w != 42 {
		t.Errorf("decimal window = %d, %v", w, err)
	}
	if _, err := parseWindow("lobster"); err == nil {
		t.Error("nonsense window id should fail")
	}
}

func TestCString(t *testing.T) {
	if got := cString([]byte("abc\x00def")); got != "abc" {
		t.Errorf("cString = %q", got)
	}
	if got := cString([]byte("abc")); got != "abc" {
		t.Errorf("unterminated cString = %q", got)
	}
}
