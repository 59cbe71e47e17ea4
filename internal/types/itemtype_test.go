package types

import "testing"

func TestItemTypeFromChar(t *testing.T) {
	if got := ItemTypeFromChar('1'); got != TypeMenu {
		t.Errorf("Expected TypeMenu for '1', got %v", got)
	}
	if got := ItemTypeFromChar('z'); got != TypeInfo {
		t.Errorf("Expected unknown char to classify as info, got %v", got)
	}
}

func TestItemTypePredicates(t *testing.T) {
	if !TypeInfo.IsInfo() {
		t.Error("Expected info item to be IsInfo")
	}
	if TypeInfo.IsNavigable() {
		t.Error("Expected info item to never be navigable")
	}
	if !TypeError.IsNavigable() {
		t.Error("Expected error items to be navigable")
	}

	downloads := []ItemType{TypeBinhex, TypeDOS, TypeUuencoded, TypeBinary, TypeGIF, TypeImage, TypePNG, TypeSound, TypeDocument}
	for _, d := range downloads {
		if !d.IsDownload() {
			t.Errorf("Expected %v to be a download type", d)
		}
	}
	if TypeMenu.IsDownload() {
		t.Error("Expected menus to not be download types")
	}

	for _, u := range []ItemType{TypeCSO, TypeMirror, TypeTelnet3270} {
		if u.IsSupported() {
			t.Errorf("Expected %v to be unsupported", u)
		}
	}
	if !TypeTelnet.IsSupported() {
		t.Error("Expected telnet to be supported")
	}
}

func TestDocumentLinks(t *testing.T) {
	doc := &Document{
		Kind: DocMenu,
		Items: []Item{
			{Type: TypeInfo, Display: "welcome"},
			{Type: TypeMenu, Display: "software", Addr: Address{Host: "a", Port: 70, Selector: "/sw"}},
			{Type: TypeInfo, Display: "---"},
			{Type: TypeText, Display: "about", Addr: Address{Host: "a", Port: 70, Selector: "/about"}},
		},
	}

	if got := doc.LinkCount(); got != 2 {
		t.Fatalf("Expected 2 links, got %d", got)
	}
	if it := doc.Link(1); it == nil || it.Display != "software" {
		t.Errorf("Expected link 1 to be software, got %+v", it)
	}
	if it := doc.Link(2); it == nil || it.Display != "about" {
		t.Errorf("Expected link 2 to be about, got %+v", it)
	}
	if it := doc.Link(3); it != nil {
		t.Errorf("Expected link 3 to be nil, got %+v", it)
	}
}
