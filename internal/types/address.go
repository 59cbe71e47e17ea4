package types

import (
	"fmt"
	"net"
	"path"
	"strconv"
	"strings"
)

// DefaultPort is the standard Gopher port.
const DefaultPort = 70

// InternalHost is the pseudo-host used for pages the client serves
// itself (home screen, help, bookmarks, session history). Addresses
// with this host are never dialed.
const InternalHost = "burrow"

// Address identifies one Gopher resource.
type Address struct {
	Host     string
	Port     int
	Selector string
	Type     ItemType

	// TLSHint is set when the address came from a gophers:// URL.
	// Per-session flags override it during transport selection.
	TLSHint bool
}

// ParseURL parses a Gopher URL into an Address. It accepts full
// gopher:// and gophers:// forms as well as bare host[:port][/path]
// shorthand. The path's first segment is the item type character when
// present ("/1/foo" is a menu with selector "/foo"); otherwise the
// type defaults to menu and the selector to "/".
func ParseURL(raw string) (Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Address{}, fmt.Errorf("empty URL")
	}

	addr := Address{Port: DefaultPort, Selector: "/", Type: TypeMenu}

	switch {
	case strings.HasPrefix(raw, "gophers://"):
		addr.TLSHint = true
		raw = strings.TrimPrefix(raw, "gophers://")
	case strings.HasPrefix(raw, "gopher://"):
		raw = strings.TrimPrefix(raw, "gopher://")
	case strings.Contains(raw, "://"):
		return Address{}, fmt.Errorf("unsupported scheme in %q", raw)
	}

	hostport := raw
	rest := ""
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		hostport, rest = raw[:i], raw[i:]
	}
	if hostport == "" {
		return Address{}, fmt.Errorf("missing host in %q", raw)
	}

	if host, port, err := net.SplitHostPort(hostport); err == nil {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return Address{}, fmt.Errorf("invalid port in %q", hostport)
		}
		addr.Host, addr.Port = host, p
	} else {
		addr.Host = hostport
	}

	// "/1/selector" carries an explicit item type; a bare path is a
	// menu selector as-is.
	if len(rest) >= 2 && (len(rest) == 2 || rest[2] == '/') {
		if t := ItemTypeFromChar(rest[1]); t != TypeInfo || rest[1] == 'i' {
			addr.Type = t
			addr.Selector = rest[2:]
			if addr.Selector == "" {
				addr.Selector = "/"
			}
			return addr, nil
		}
	}
	if rest != "" {
		addr.Selector = rest
	}
	return addr, nil
}

// URL renders the canonical string form of the address. The default
// port is omitted; the item type is always included so the URL
// round-trips through ParseURL.
func (a Address) URL() string {
	scheme := "gopher"
	if a.TLSHint {
		scheme = "gophers"
	}
	host := a.Host
	if a.Port != DefaultPort {
		host = net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
	}
	sel := a.Selector
	if !strings.HasPrefix(sel, "/") {
		sel = "/" + sel
	}
	if sel == "/" && a.Type == TypeMenu {
		return fmt.Sprintf("%s://%s", scheme, host)
	}
	return fmt.Sprintf("%s://%s/%c%s", scheme, host, a.Type.Char(), sel)
}

// DownloadFilename suggests a file name for saving this resource,
// derived from the last selector segment with the host as fallback.
func (a Address) DownloadFilename() string {
	name := path.Base(strings.TrimRight(a.Selector, "/"))
	if name == "" || name == "." || name == "/" {
		name = a.Host + ".download"
	}
	return name
}

// IsInternal reports whether the address refers to a page the client
// serves itself.
func (a Address) IsInternal() bool {
	return a.Host == InternalHost
}
