package cards

import "testing"

func strptr(s string) *string { return &s }

func TestIdentityKeyStability(t *testing.T) {
	t.Run("EqualFieldsEqualKeys", func(t *testing.T) {
		a := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Foil: strptr("foil"), Lang: "en"}
		b := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Foil: strptr("foil"), Lang: "EN"}
		if a.Identity() != b.Identity() {
			t.Errorf("keys differ for equal identity fields: %q vs %q", a.Identity(), b.Identity())
		}
	})

	t.Run("FinishDistinguishes", func(t *testing.T) {
		plain := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Lang: "en"}
		foil := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Foil: strptr("foil"), Lang: "en"}
		if plain.Identity() == foil.Identity() {
			t.Error("foil and non-foil printings must have distinct keys")
		}
	})

	t.Run("LangDistinguishes", func(t *testing.T) {
		en := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Lang: "en"}
		ja := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Lang: "ja"}
		if en.Identity() == ja.Identity() {
			t.Error("different languages must have distinct keys")
		}
	})

	t.Run("IDDistinguishes", func(t *testing.T) {
		a := Card{ScryfallID: "56ebc372-aabd-4174-a943-c7bf59e5028d", Lang: "en"}
		b := Card{ScryfallID: "f3d62dbd-63db-4ac9-950f-9852627f23f2", Lang: "en"}
		if a.Identity() == b.Identity() {
			t.Error("different scryfall IDs must have distinct keys")
		}
	})
}

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"ja", "ja"},
		{"pt", "pt"},
		{"zhs", "zhs"}, // Scryfall code, not BCP 47; lowercased as-is
		{"ZHT", "zht"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLang(tt.in); got != tt.want {
			t.Errorf("NormalizeLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeys(t *testing.T) {
	set := NewKeys("a|foil|en", "b||en")
	if !set.Has("a|foil|en") {
		t.Error("expected membership for a|foil|en")
	}
	if set.Has("c||en") {
		t.Error("unexpected membership for c||en")
	}
	set.Add("c||en")
	if !set.Has("c||en") {
		t.Error("expected membership after Add")
	}
}
