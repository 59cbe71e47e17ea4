// Package transport opens the byte channel a Gopher exchange runs
// over: plain TCP, TLS, or a SOCKS5 proxy (Tor). The three paths
// satisfy the same contract and are selected once, before any protocol
// code runs, so the parser and renderer stay transport-agnostic.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

const (
	// DefaultTimeout bounds both the dial and the full read of a
	// response. Gopher servers either answer quickly or not at all,
	// so a short fixed budget beats configurable retry machinery.
	DefaultTimeout = 8 * time.Second

	// DefaultProxyAddr is the standard local Tor SOCKS endpoint.
	DefaultProxyAddr = "127.0.0.1:9050"
)

// Options selects the channel kind for a dial. TLS and Tor are
// mutually exclusive; when both are set Tor wins, matching the flag
// precedence documented in the CLI help.
type Options struct {
	TLS       bool
	Tor       bool
	ProxyAddr string        // SOCKS endpoint, DefaultProxyAddr when empty
	Timeout   time.Duration // DefaultTimeout when zero
}

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

func (o Options) proxyAddr() string {
	if o.ProxyAddr != "" {
		return o.ProxyAddr
	}
	return DefaultProxyAddr
}

// Dial opens a connection to host:port over the channel kind selected
// by opts. The returned net.Conn carries no deadline; the caller owns
// the read/write budget.
func Dial(ctx context.Context, host string, port int, opts Options) (net.Conn, error) {
	if opts.Tor {
		return dialProxied(ctx, host, port, opts)
	}
	if opts.TLS {
		return dialTLS(ctx, host, port, opts)
	}
	return dialPlain(ctx, host, port, opts)
}

func dialPlain(ctx context.Context, host string, port int, opts Options) (net.Conn, error) {
	d := net.Dialer{Timeout: opts.timeout()}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s:%d: %v", ErrConnect, host, port, err)
	}
	return conn, nil
}

func dialTLS(ctx context.Context, host string, port int, opts Options) (net.Conn, error) {
	raw, err := dialPlain(ctx, host, port, opts)
	if err != nil {
		return nil, err
	}

	// Gopherspace certificates are self-signed as a rule, so the
	// handshake is encrypt-only with no verification.
	conn := tls.Client(raw, &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true,
	})
	hctx, cancel := context.WithTimeout(ctx, opts.timeout())
	defer cancel()
	if err := conn.HandshakeContext(hctx); err != nil {
		raw.Close()
		return nil, fmt.Errorf("%w: %s:%d: %v", ErrTLSHandshake, host, port, err)
	}
	return conn, nil
}

func dialProxied(ctx context.Context, host string, port int, opts Options) (net.Conn, error) {
	// Probe the SOCKS endpoint first so "Tor is not running" reports
	// as a proxy error instead of a remote connection error.
	probe, err := (&net.Dialer{Timeout: opts.timeout()}).DialContext(ctx, "tcp", opts.proxyAddr())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProxy, opts.proxyAddr(), err)
	}
	probe.Close()

	dialer, err := proxy.SOCKS5("tcp", opts.proxyAddr(), nil, &net.Dialer{Timeout: opts.timeout()})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProxy, opts.proxyAddr(), err)
	}

	target := net.JoinHostPort(host, strconv.Itoa(port))
	var conn net.Conn
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		conn, err = cd.DialContext(ctx, "tcp", target)
	} else {
		conn, err = dialer.Dial("tcp", target)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s:%d via %s: %v", ErrConnect, host, port, opts.proxyAddr(), err)
	}
	return conn, nil
}
