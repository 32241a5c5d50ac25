package deck

import (
	"os"
	"path/filepath"
	"testing"
)

const validManifest = `{
  "number": 200,
  "name": "أذكار",
  "englishName": "Morning Adhkar",
  "items": [
    {"number": 1, "arabic": "بِسْمِ اللَّهِ", "translation": "In the name of Allah"},
    {"number": 2, "arabic": "الْحَمْدُ لِلَّهِ", "translation": "Praise be to Allah"}
  ]
}`

func writeTempDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile_Valid(t *testing.T) {
	d, err := ParseFile(writeTempDeck(t, validManifest))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if d.Number != 200 {
		t.Errorf("Number = %d, want 200", d.Number)
	}
	if d.EnglishName != "Morning Adhkar" {
		t.Errorf("EnglishName = %q, want Morning Adhkar", d.EnglishName)
	}
	if d.RevelationType != "Local" {
		t.Errorf("RevelationType = %q, want Local", d.RevelationType)
	}
	if len(d.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(d.Items))
	}
	if d.Items[0].ID != "200:1" {
		t.Errorf("Items[0].ID = %q, want 200:1", d.Items[0].ID)
	}
}

func TestParseFile_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{`},
		{"missing items", `{"number": 200, "englishName": "X"}`},
		{"empty items", `{"number": 200, "englishName": "X", "items": []}`},
		{"reserved number", `{"number": 5, "englishName": "X", "items": [{"number": 1, "arabic": "a"}]}`},
		{"item without arabic", `{"number": 200, "englishName": "X", "items": [{"number": 1}]}`},
		{"unknown field", `{"number": 200, "englishName": "X", "audio": true, "items": [{"number": 1, "arabic": "a"}]}`},
		{"duplicate verse number", `{"number": 200, "englishName": "X", "items": [
			{"number": 1, "arabic": "a"}, {"number": 1, "arabic": "b"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFile(writeTempDeck(t, tt.content)); err == nil {
				t.Error("ParseFile accepted an invalid deck file")
			}
		})
	}
}

