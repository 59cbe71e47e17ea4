/*
Package types defines the core data structures used throughout burrow.

# Overview

The types package provides shared type definitions for:
  - Gopher item types (RFC 1436 plus common extensions)
  - Addresses (host, port, selector, item type, transport hint)
  - Menu items (one parsed line of a Gopher menu)
  - Documents (the tagged menu/text/binary variant a fetch produces)

# Item Types

ItemType is the single-character classification a Gopher server attaches
to every menu line. The canonical set from RFC 1436 is extended with the
de facto types found in the wild (HTML, images, sound, info lines).
Unknown characters classify as Info so garbled menus stay renderable.

Predicates:
  - IsInfo: display-only, never selectable
  - IsNavigable: receives a link index when rendered
  - IsDownload: fetched as binary and saved to disk
  - IsSupported: CSO, mirror and tn3270 items are recognized but not
    openable

# Addresses

Address identifies one Gopher resource. ParseURL accepts full
gopher:// and gophers:// URLs as well as bare host[:port][/path]
shorthand; URL renders the canonical string form back. The port
defaults to 70, the selector to "/", and the item type to menu.

# Documents

Document is a tagged variant: exactly one of the menu item list, the
text line list, or the binary payload is populated per fetch, selected
by the item type that was requested (Gopher responses are not
self-describing). The raw response bytes are retained for the raw
source view.

# Type Safety

All types are designed to be:
  - Immutable after parsing (scroll/selection state lives elsewhere)
  - Safe for concurrent reads
  - Cheap to copy (Address and Item are small value types)
*/
package types
