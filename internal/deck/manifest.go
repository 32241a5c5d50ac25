package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// manifestSchema validates local deck files before decoding. Deck
// numbers start above the 114 surahs so imported decks never collide
// with API content.
var manifestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"number": map[string]any{
			"type":    "integer",
			"minimum": 115,
		},
		"name": map[string]any{
			"type": "string",
		},
		"englishName": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"number": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"arabic": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"translation": map[string]any{
						"type": "string",
					},
				},
				"required":             []any{"number", "arabic"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"number", "englishName", "items"},
	"additionalProperties": false,
}

var compileManifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects a parsed JSON value, so round-trip the
	// definition through encoding/json.
	b, err := json.Marshal(manifestSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://deck-manifest.json"
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

type manifest struct {
	Number      int            `json:"number"`
	Name        string         `json:"name"`
	EnglishName string         `json:"englishName"`
	Items       []manifestItem `json:"items"`
}

type manifestItem struct {
	Number      int    `json:"number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// ParseFile reads a local deck file, validates it against the manifest
// schema, and returns the deck. Invalid files are rejected before any
// decoding into domain types.
func ParseFile(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	return parseManifest(raw)
}

func parseManifest(raw []byte) (*Deck, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("deck file is not valid JSON: %w", err)
	}

	schema, err := compileManifestSchema()
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck file rejected: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode deck file: %w", err)
	}

	d := &Deck{
		Number:         m.Number,
		Name:           m.Name,
		EnglishName:    m.EnglishName,
		RevelationType: "Local",
		Items:          make([]Item, 0, len(m.Items)),
	}
	seen := make(map[int]bool, len(m.Items))
	for _, it := range m.Items {
		if seen[it.Number] {
			return nil, fmt.Errorf("deck file rejected: duplicate verse number %d", it.Number)
		}
		seen[it.Number] = true
		d.Items = append(d.Items, Item{
			ID:          ItemID(m.Number, it.Number),
			Number:      it.Number,
			Arabic:      it.Arabic,
			Translation: it.Translation,
		})
	}
	return d, nil
}
