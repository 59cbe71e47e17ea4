package types

// ItemType is the single-character Gopher item classification.
type ItemType byte

const (
	TypeText       ItemType = '0' // plain text file
	TypeMenu       ItemType = '1' // menu / directory
	TypeCSO        ItemType = '2' // CSO phone book (unsupported)
	TypeError      ItemType = '3' // server error line
	TypeBinhex     ItemType = '4' // BinHex encoded file
	TypeDOS        ItemType = '5' // DOS archive
	TypeUuencoded  ItemType = '6' // uuencoded file
	TypeSearch     ItemType = '7' // full-text search
	TypeTelnet     ItemType = '8' // telnet session
	TypeBinary     ItemType = '9' // generic binary file
	TypeMirror     ItemType = '+' // mirror of another server (unsupported)
	TypeGIF        ItemType = 'g' // GIF image
	TypeTelnet3270 ItemType = 'T' // tn3270 session (unsupported)
	TypeHTML       ItemType = 'h' // HTML document / URL: link
	TypeImage      ItemType = 'I' // image file
	TypePNG        ItemType = 'p' // PNG image
	TypeInfo       ItemType = 'i' // informational line, display-only
	TypeSound      ItemType = 's' // sound file
	TypeDocument   ItemType = 'd' // document (PDF, DOC, ...)
)

// ItemTypeFromChar classifies a raw type character. Unknown characters
// classify as Info rather than failing, so malformed menus degrade to
// display-only lines instead of aborting a parse.
func ItemTypeFromChar(c byte) ItemType {
	switch t := ItemType(c); t {
	case TypeText, TypeMenu, TypeCSO, TypeError, TypeBinhex, TypeDOS,
		TypeUuencoded, TypeSearch, TypeTelnet, TypeBinary, TypeMirror,
		TypeGIF, TypeTelnet3270, TypeHTML, TypeImage, TypePNG,
		TypeInfo, TypeSound, TypeDocument:
		return t
	default:
		return TypeInfo
	}
}

// Char returns the wire-format type character.
func (t ItemType) Char() byte {
	return byte(t)
}

// IsInfo reports whether the item is display-only and never selectable.
func (t ItemType) IsInfo() bool {
	return t == TypeInfo
}

// IsNavigable reports whether the item receives a link index when a
// menu is rendered. Every type except info lines is navigable, even
// error lines (selecting one simply re-fetches it).
func (t ItemType) IsNavigable() bool {
	return !t.IsInfo()
}

// IsDownload reports whether the item is fetched as an opaque binary
// blob and saved to disk instead of being rendered.
func (t ItemType) IsDownload() bool {
	switch t {
	case TypeBinhex, TypeDOS, TypeUuencoded, TypeBinary,
		TypeGIF, TypeImage, TypePNG, TypeSound, TypeDocument:
		return true
	default:
		return false
	}
}

// IsSupported reports whether the client can open the item at all.
func (t ItemType) IsSupported() bool {
	switch t {
	case TypeCSO, TypeMirror, TypeTelnet3270:
		return false
	default:
		return true
	}
}

// String returns a short human-readable name for the item type, used
// in status messages and the help screen.
func (t ItemType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeMenu:
		return "menu"
	case TypeCSO:
		return "CSO"
	case TypeError:
		return "error"
	case TypeBinhex:
		return "binhex"
	case TypeDOS:
		return "DOS archive"
	case TypeUuencoded:
		return "uuencoded"
	case TypeSearch:
		return "search"
	case TypeTelnet:
		return "telnet"
	case TypeBinary:
		return "binary"
	case TypeMirror:
		return "mirror"
	case TypeGIF:
		return "GIF"
	case TypeTelnet3270:
		return "tn3270"
	case TypeHTML:
		return "HTML"
	case TypeImage:
		return "image"
	case TypePNG:
		return "PNG"
	case TypeInfo:
		return "info"
	case TypeSound:
		return "sound"
	case TypeDocument:
		return "document"
	default:
		return "unknown"
	}
}
