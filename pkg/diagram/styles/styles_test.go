package styles

import (
	"hash/fnv"
	"slices"
	"testing"
)

func TestSeedMatchesFNV1aForASCII(t *testing.T) {
	// For ASCII input, UTF-16 code units equal bytes, so the stdlib hash
	// must agree.
	inputs := [][2]string{
		{"", ""},
		{"Lead generation pipeline", "Reps lose track of inbound leads"},
		{"dao", "votes stall"},
	}
	for _, in := range inputs {
		h := fnv.New32a()
		h.Write([]byte(in[0] + "::" + in[1]))
		if got, want := Seed(in[0], in[1]), h.Sum32(); got != want {
			t.Errorf("Seed(%q, %q) = %#x, want %#x", in[0], in[1], got, want)
		}
	}
}

func TestSeedKnownValues(t *testing.T) {
	// "::" alone: 0x811c9dc5 ^ 0x3a, * prime, ^ 0x3a, * prime.
	h := uint32(0x811c9dc5)
	for range 2 {
		h ^= 0x3a
		h *= 0x01000193
	}
	if got := Seed("", ""); got != h {
		t.Errorf("Seed(\"\", \"\") = %#x, want %#x", got, h)
	}
}

func TestSeedUsesUTF16Units(t *testing.T) {
	// "é" is one UTF-16 unit (0xe9) but two UTF-8 bytes.
	h := uint32(0x811c9dc5)
	for _, u := range []uint16{0xe9, ':', ':'} {
		h ^= uint32(u)
		h *= 0x01000193
	}
	if got := Seed("é", ""); got != h {
		t.Errorf("Seed(é) = %#x, want %#x", got, h)
	}

	// A supplementary-plane rune is a surrogate pair.
	h = uint32(0x811c9dc5)
	for _, u := range []uint16{':', ':', 0xd83d, 0xde80} {
		h ^= uint32(u)
		h *= 0x01000193
	}
	if got := Seed("", "🚀"); got != h {
		t.Errorf("Seed(🚀) = %#x, want %#x", got, h)
	}
}

func TestAccentDeterministic(t *testing.T) {
	a := Accent("Workflow", "Invoices get lost")
	for range 10 {
		if b := Accent("Workflow", "Invoices get lost"); a != b {
			t.Fatalf("Accent not deterministic: %q vs %q", a, b)
		}
	}
	if !slices.Contains(Palette[:], a) {
		t.Errorf("Accent %q not in palette", a)
	}
	if want := Palette[Seed("Workflow", "Invoices get lost")%5]; a != want {
		t.Errorf("Accent = %q, want %q", a, want)
	}
}

func TestAccentCoversPalette(t *testing.T) {
	seen := map[string]bool{}
	for i := range 200 {
		seen[Accent("system", string(rune('a'+i%26))+string(rune('a'+i/26)))] = true
	}
	if len(seen) != len(Palette) {
		t.Errorf("200 inputs hit %d of %d accents", len(seen), len(Palette))
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"Tom & Jerry's", "Tom &amp; Jerry&apos;s"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
		{"naïve → ok", "naïve → ok"},
		{"tab\tand\nnewline", "tab\tand\nnewline"},
		{"esc\x1b bell\x07 nul\x00", "esc bell nul"},
		{"zero\u200bwidth", "zero\u200bwidth"},
		{"bad\uFFFEchar", "badchar"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
