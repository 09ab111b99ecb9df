package span

import "testing"

func TestFontIsBold(t *testing.T) {
	cases := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"TimesNewRomanPS-BoldMT", true},
		{"Arial-Black", true},
		{"FKGVHA+RobotoCondensed-bold", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, c := range cases {
		if got := fontIsBold(c.font); got != c.want {
			t.Errorf("fontIsBold(%q) = %v, want %v", c.font, got, c.want)
		}
	}
}

func TestFontIsItalic(t *testing.T) {
	if !fontIsItalic("Times-Italic") {
		t.Error("expected Times-Italic to be italic")
	}
	if !fontIsItalic("Courier-Oblique") {
		t.Error("expected Courier-Oblique to be italic")
	}
	if fontIsItalic("Helvetica-Bold") {
		t.Error("Helvetica-Bold should not be italic")
	}
}

func TestDecodePDFString_UTF16BE(t *testing.T) {
	// "Report" encoded as UTF-16BE with BOM.
	raw := "\xFE\xFF\x00R\x00e\x00p\x00o\x00r\x00t"
	if got := decodePDFString(raw); got != "Report" {
		t.Errorf("expected %q, got %q", "Report", got)
	}
}

func TestDecodePDFString_PlainASCII(t *testing.T) {
	if got := decodePDFString("Annual Report"); got != "Annual Report" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestDecodePDFString_Latin1Fallback(t *testing.T) {
	// 0xE9 is not valid UTF-8 on its own; treat as Latin-1 é.
	if got := decodePDFString("R\xe9sum\xe9"); got != "Résumé" {
		t.Errorf("expected %q, got %q", "Résumé", got)
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Annual Report 2023  ", "Annual Report 2023"},
		{"", ""},
		{"   ", ""},
		{"\x01\x02\x03a", ""}, // mostly control characters
		{"Clean Title", "Clean Title"},
	}
	for _, c := range cases {
		if got := sanitizeTitle(c.in); got != c.want {
			t.Errorf("sanitizeTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
