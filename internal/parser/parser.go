// Package parser turns raw response bytes into a typed Document. The
// requested item type decides the shape, since Gopher responses are
// not self-describing. The parser never fails: payload oddities
// degrade (malformed menu lines become display-only info items) so
// partial or garbled responses still render.
package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/studiowebux/burrow/internal/types"
)

// Parse builds a Document from raw bytes and the item type that was
// requested. Menu and search responses parse as menus, text responses
// as raw lines up to the dot terminator, everything else as an opaque
// binary blob.
func Parse(raw []byte, t types.ItemType) *types.Document {
	switch t {
	case types.TypeMenu, types.TypeSearch:
		return parseMenu(raw)
	case types.TypeText:
		return parseText(raw)
	default:
		return &types.Document{Kind: types.DocBinary, Data: raw, Raw: raw}
	}
}

func parseMenu(raw []byte) *types.Document {
	doc := &types.Document{Kind: types.DocMenu, Raw: raw}
	for _, line := range splitLines(raw) {
		if line == "." {
			break
		}
		if line == "" {
			continue
		}
		doc.Items = append(doc.Items, parseMenuLine(line))
	}
	return doc
}

// parseMenuLine parses one menu line. A well-formed line is a type
// character and display text, then selector, host, and port separated
// by tabs. Anything short of that becomes a display-only info item
// rather than an error; a non-numeric port defaults to 70.
func parseMenuLine(line string) types.Item {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 || fields[0] == "" {
		return types.Item{Type: types.TypeInfo, Display: strings.TrimPrefix(line, "i")}
	}

	t := types.ItemTypeFromChar(fields[0][0])
	display := fields[0][1:]
	if t.IsInfo() {
		return types.Item{Type: types.TypeInfo, Display: display}
	}

	port := types.DefaultPort
	if p, err := strconv.Atoi(strings.TrimSpace(fields[3])); err == nil && p > 0 && p <= 65535 {
		port = p
	}

	selector := fields[1]
	if selector == "" {
		selector = "/"
	}

	return types.Item{
		Type:    t,
		Display: display,
		Addr: types.Address{
			Host:     fields[2],
			Port:     port,
			Selector: selector,
			Type:     t,
		},
	}
}

func parseText(raw []byte) *types.Document {
	doc := &types.Document{Kind: types.DocText, Raw: raw}
	for _, line := range splitLines(raw) {
		if line == "." {
			break
		}
		// Lines starting with ".." are dot-escaped per convention.
		if strings.HasPrefix(line, "..") {
			line = line[1:]
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// splitLines splits on LF, trims a trailing CR per line, and decodes
// non-UTF-8 payloads as Latin-1 so mixed-charset gopherspace still
// renders.
func splitLines(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	text := decode(raw)
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
