// Package wire encodes requests and decodes replies of the X11 core
// protocol, for the handful of requests this library issues.
//
// # Wire Format Overview
//
// Every request starts with a 4-byte header (opcode, a data byte the
// request may reuse, and a length in 4-byte units covering the whole
// request). Every reply, error, and event the server sends back is framed
// in 32 bytes; replies may carry an extended body whose length in 4-byte
// units sits in the frame header.
//
//	Frame           First byte    Body
//	──────────────────────────────────────────────
//	error           0             fixed 32 bytes
//	reply           1             32 + 4*length
//	event           2..127        fixed 32 bytes
//
// This client always negotiates little-endian byte order at setup, so all
// multi-byte fields here are little-endian.
//
// Decoding is defensive: every field read is bounds-checked against the
// buffer that was actually collected, and declared lengths are never
// trusted past it.
package wire
