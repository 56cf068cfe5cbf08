// Package xutil decodes raw X11 replies into typed, safe-to-use values:
// window text properties, class-hint string pairs, transient-window
// references, keyboard lock-modifier masks, and protocol error
// descriptions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	xutil/           Root package with the Conn round-trip and
//	                 KeycodeResolver interfaces
//	├── wire/        Request encoding, reply decoding, the generic error
//	                 record, predefined atoms and label tables
//	├── prop/        Window property decoders: atoms, text properties,
//	                 class hints, transient hints
//	├── modmap/      Modifier-mapping scanner for lock key masks
//	├── xerror/      Protocol error decoding and handler installation
//	├── xconn/       Concrete Conn over a display socket
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Connect to a display and decode a window's class hint:
//
//	conn, err := xconn.Dial(os.Getenv("DISPLAY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	if ch := prop.GetClassHint(conn, win); ch != nil {
//	    fmt.Println(ch.Instance, ch.Class)
//	}
//
// Every decoder issues its own request and blocks on the matching reply
// before returning. Failures surface as a false boolean, a nil result, or
// the zero sentinel, never as a panic; the decision to retry or escalate
// stays with the caller.
//
// All payloads are treated as raw bytes. Nothing here converts text
// encodings, caches interned atoms, or understands extension-specific
// requests beyond rendering their codes as decimal labels.
package xutil
