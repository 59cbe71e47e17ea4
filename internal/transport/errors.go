package transport

import "errors"

// Sentinel errors classifying why a dial failed. They are matched with
// errors.Is at the action-dispatch boundary to pick the user-facing
// message; everything below that boundary only wraps them.
var (
	// ErrConnect covers DNS failures, refused connections, and
	// timeouts reaching the remote server.
	ErrConnect = errors.New("connection failed")

	// ErrTLSHandshake means the TCP connection succeeded but the TLS
	// handshake did not. Surfaced with a hint to retry without TLS.
	ErrTLSHandshake = errors.New("TLS handshake failed")

	// ErrProxy means the local SOCKS proxy endpoint is unreachable,
	// as opposed to the remote host being unreachable through it.
	ErrProxy = errors.New("proxy unreachable")
)
