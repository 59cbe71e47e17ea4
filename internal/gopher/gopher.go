// Package gopher performs the wire exchange: one request line out, the
// whole response in. Gopher has no length framing, so a fetch reads
// until the server closes the connection; the dot terminator, when
// present, is handled later by the parser.
package gopher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/studiowebux/burrow/internal/transport"
	"github.com/studiowebux/burrow/internal/types"
)

// Response is the raw result of one fetch, tagged with the channel
// that carried it for the status bar indicator.
type Response struct {
	Body []byte
	TLS  bool
	Tor  bool
}

// Fetch dials addr, writes the selector (with an optional search
// query), and reads the response to EOF. It blocks until the server
// closes, the timeout elapses, or ctx is canceled; the caller treats
// it as one cancellable unit of work.
func Fetch(ctx context.Context, addr types.Address, query string, opts transport.Options) (*Response, error) {
	conn, err := transport.Dial(ctx, addr.Host, addr.Port, opts)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = transport.DefaultTimeout
	}
	conn.SetDeadline(time.Now().Add(timeout))

	// Unblock the read when the fetch is superseded; the stale result
	// is discarded by generation check either way, this just frees the
	// socket promptly.
	watch := make(chan struct{})
	defer close(watch)
	go func() {
		select {
		case <-ctx.Done():
			conn.SetDeadline(time.Now())
		case <-watch:
		}
	}()

	req := addr.Selector
	if query != "" {
		req += "\t" + query
	}
	if _, err := conn.Write([]byte(req + "\r\n")); err != nil {
		return nil, fmt.Errorf("%w: writing request to %s: %v", transport.ErrConnect, addr.Host, err)
	}

	body, err := io.ReadAll(conn)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return nil, fmt.Errorf("%w: %s: connection timed out", transport.ErrConnect, addr.Host)
		}
		return nil, fmt.Errorf("%w: reading from %s: %v", transport.ErrConnect, addr.Host, err)
	}

	return &Response{Body: body, TLS: opts.TLS && !opts.Tor, Tor: opts.Tor}, nil
}

// Download writes the exact received bytes to dir, named after the
// address selector, creating the directory if needed. Returns the
// final path and byte count.
func Download(resp *Response, dir string, addr types.Address) (string, int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create download directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, addr.DownloadFilename())
	if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, len(resp.Body), nil
}
