package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is one verse of a deck. IDs have the form "deck:number" and are
// stable across sessions; they key the durable progress maps.
type Item struct {
	ID           string
	Number       int // position within the deck, 1-based
	GlobalNumber int // absolute verse number across the whole corpus (0 for local decks)
	Arabic       string
	Translation  string
}

// Deck is an ordered collection of verses studied together (one surah,
// or one imported local deck). Identity and item order are fixed once
// loaded.
type Deck struct {
	Number         int
	Name           string
	EnglishName    string
	RevelationType string
	Items          []Item
}

// ID returns the deck identifier used in progress records.
func (d *Deck) ID() string {
	return strconv.Itoa(d.Number)
}

// Item returns the verse with the given id, or nil if the deck does not
// contain it.
func (d *Deck) Item(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// ItemIDs returns all verse ids in deck order.
func (d *Deck) ItemIDs() []string {
	ids := make([]string, len(d.Items))
	for i, it := range d.Items {
		ids[i] = it.ID
	}
	return ids
}

// ItemID builds the canonical "deck:number" verse identifier.
func ItemID(deckNumber, verseNumber int) string {
	return fmt.Sprintf("%d:%d", deckNumber, verseNumber)
}

// Info is one entry in the deck list, enough to render a picker row
// without loading verse content.
type Info struct {
	Number         int
	Name           string
	EnglishName    string
	RevelationType string
	ItemCount      int
	Local          bool // imported from a local file rather than the API
}

// Filter returns the infos matching query. Matches deck number, a
// "deck:verse" reference (verse part may be empty), or a substring of
// either name. An empty query matches everything.
func Filter(infos []Info, query string) []Info {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return infos
	}

	if num, ok := parseRef(q); ok {
		var out []Info
		for _, in := range infos {
			if in.Number == num {
				out = append(out, in)
			}
		}
		return out
	}

	var out []Info
	for _, in := range infos {
		if strings.Contains(strings.ToLower(in.EnglishName), q) ||
			strings.Contains(in.Name, q) ||
			strings.Contains(strconv.Itoa(in.Number), q) {
			out = append(out, in)
		}
	}
	return out
}

// parseRef recognizes "n:m" and "n:" verse references and returns the
// deck number.
func parseRef(q string) (int, bool) {
	colon := strings.IndexByte(q, ':')
	if colon < 1 {
		return 0, false
	}
	num, err := strconv.Atoi(q[:colon])
	if err != nil {
		return 0, false
	}
	rest := q[colon+1:]
	if rest != "" {
		if _, err := strconv.Atoi(rest); err != nil {
			return 0, false
		}
	}
	return num, true
}
