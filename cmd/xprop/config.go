package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/modmap"
)

type fileConfig struct {
	Display        string         `toml:"display"`
	LogLevel       string         `toml:"log_level"`
	TextBufferSize int            `toml:"text_buffer_size"`
	Keycodes       keycodesConfig `toml:"keycodes"`
}

type keycodesConfig struct {
	NumLock   uint8 `toml:"num_lock"`
	ShiftLock uint8 `toml:"shift_lock"`
	CapsLock  uint8 `toml:"caps_lock"`
}

type config struct {
	Display        string
	LogLevel       string
	TextBufferSize int
	Keycodes       keycodesConfig
}

func defaultConfig() config {
	return config{
		LogLevel:       "info",
		TextBufferSize: 256,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("display") {
		cfg.Display = strings.TrimSpace(raw.Display)
	}
	if meta.IsDefined("log_level") {
		level := strings.ToLower(strings.TrimSpace(raw.LogLevel))
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		default:
			return config{}, fmt.Errorf("unknown log_level %q", raw.LogLevel)
		}
	}
	if meta.IsDefined("text_buffer_size") {
		if raw.TextBufferSize < 2 {
			return config{}, fmt.Errorf("text_buffer_size %d is too small", raw.TextBufferSize)
		}
		cfg.TextBufferSize = raw.TextBufferSize
	}
	if meta.IsDefined("keycodes") {
		cfg.Keycodes = raw.Keycodes
	}

	return cfg, nil
}

// staticResolver resolves the three lock keysyms from configured
// keycodes. The keyboard-symbol database proper lives outside this tool.
type staticResolver struct {
	keycodes keycodesConfig
}

func (r staticResolver) Keycode(sym xutil.Keysym) xutil.Keycode {
	switch sym {
	case modmap.KeysymNumLock:
		return xutil.Keycode(r.keycodes.NumLock)
	case modmap.KeysymShiftLock:
		return xutil.Keycode(r.keycodes.ShiftLock)
	case modmap.KeysymCapsLock:
		return xutil.Keycode(r.keycodes.CapsLock)
	}
	return 0
}
