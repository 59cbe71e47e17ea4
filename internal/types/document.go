package types

// Item is one parsed line of a Gopher menu.
type Item struct {
	Type    ItemType
	Display string
	Addr    Address // zero value for info items
}

// DocKind tags the Document variant.
type DocKind int

const (
	DocMenu DocKind = iota
	DocText
	DocBinary
)

// Document is the result of one fetch: exactly one variant is
// populated, selected by the item type that was requested. Raw always
// holds the exact bytes received, for the raw source view and for
// downloads.
type Document struct {
	Kind  DocKind
	Items []Item   // DocMenu, received order
	Lines []string // DocText, dot terminator stripped
	Data  []byte   // DocBinary, exact payload
	Raw   []byte
}

// LinkCount returns the number of navigable items in a menu document.
func (d *Document) LinkCount() int {
	if d.Kind != DocMenu {
		return 0
	}
	n := 0
	for _, it := range d.Items {
		if it.Type.IsNavigable() {
			n++
		}
	}
	return n
}

// Link returns the item carrying the given 1-based link index, or nil.
func (d *Document) Link(index int) *Item {
	if d.Kind != DocMenu || index < 1 {
		return nil
	}
	n := 0
	for i := range d.Items {
		if d.Items[i].Type.IsNavigable() {
			n++
			if n == index {
				return &d.Items[i]
			}
		}
	}
	return nil
}
