package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/studiowebux/burrow/internal/config"
	"github.com/studiowebux/burrow/internal/gopher"
	"github.com/studiowebux/burrow/internal/parser"
	"github.com/studiowebux/burrow/internal/render"
	"github.com/studiowebux/burrow/internal/transport"
	"github.com/studiowebux/burrow/internal/types"
)

// RunOptions contains options for a one-shot fetch (no TUI)
type RunOptions struct {
	URL    string
	Raw    bool // write the exact received bytes instead of rendering
	Width  int  // rendered output width, 0 = 80
	Config config.Config
	Output io.Writer // defaults to stdout
}

// Run fetches a single URL and writes it to the output: the raw
// response bytes with --raw, a rendered document otherwise. Ctrl-C
// cancels the fetch.
func Run(opts RunOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	addr, err := types.ParseURL(opts.URL)
	if err != nil {
		return fmt.Errorf("bad URL %q: %w", opts.URL, err)
	}
	if addr.IsInternal() {
		return fmt.Errorf("internal pages are only available in the TUI")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := gopher.Fetch(ctx, addr, "", fetchOptions(opts.Config, addr))
	if err != nil {
		return err
	}

	if opts.Raw {
		_, err = out.Write(resp.Body)
		return err
	}

	doc := parser.Parse(resp.Body, addr.Type)
	frame := render.Layout(doc, render.Options{
		Width: width,
		Wide:  opts.Config.Wide,
	})
	for _, line := range frame.Lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// fetchOptions applies the same channel policy as the TUI: flags
// override the URL's TLS hint, Tor wins over TLS.
func fetchOptions(cfg config.Config, addr types.Address) transport.Options {
	opts := transport.Options{
		Timeout:   cfg.Timeout(),
		ProxyAddr: cfg.Proxy,
	}
	if cfg.Tor {
		opts.Tor = true
	} else if cfg.TLS || addr.TLSHint {
		opts.TLS = true
	}
	return opts
}
