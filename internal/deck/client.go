package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIBase is the public alquran.cloud REST endpoint.
const DefaultAPIBase = "https://api.alquran.cloud/v1"

// arabicEdition is the canonical text edition paired with the chosen
// translation on every load.
const arabicEdition = "quran-uthmani"

// Client fetches deck lists and verse content from the alquran.cloud
// API. It performs no caching; callers hold loaded decks for the
// lifetime of a session.
type Client struct {
	base       string
	httpClient *http.Client
}

// NewClient creates a Client against base, or DefaultAPIBase when base
// is empty.
func NewClient(base string) *Client {
	if base == "" {
		base = DefaultAPIBase
	}
	return &Client{
		base:       base,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type metaResponse struct {
	Data struct {
		Surahs struct {
			References []surahRef `json:"references"`
		} `json:"surahs"`
	} `json:"data"`
}

type surahRef struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	RevelationType string `json:"revelationType"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
}

type editionsResponse struct {
	Data []edition `json:"data"`
}

type edition struct {
	Number         int       `json:"number"`
	Name           string    `json:"name"`
	EnglishName    string    `json:"englishName"`
	RevelationType string    `json:"revelationType"`
	Ayahs          []ayahRef `json:"ayahs"`
}

type ayahRef struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
}

// List returns the full surah catalogue from the /meta endpoint.
func (c *Client) List(ctx context.Context) ([]Info, error) {
	var resp metaResponse
	if err := c.getJSON(ctx, c.base+"/meta", &resp); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	infos := make([]Info, 0, len(resp.Data.Surahs.References))
	for _, ref := range resp.Data.Surahs.References {
		infos = append(infos, Info{
			Number:         ref.Number,
			Name:           ref.Name,
			EnglishName:    ref.EnglishName,
			RevelationType: ref.RevelationType,
			ItemCount:      ref.NumberOfAyahs,
		})
	}
	return infos, nil
}

// Load fetches one surah in the Arabic edition plus the given
// translation and zips them into a Deck.
func (c *Client) Load(ctx context.Context, number int, translationID string) (*Deck, error) {
	if translationID == "" {
		translationID = DefaultTranslation
	}
	url := fmt.Sprintf("%s/surah/%d/editions/%s,%s", c.base, number, arabicEdition, translationID)

	var resp editionsResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("load deck %d: %w", number, err)
	}
	if len(resp.Data) < 2 {
		return nil, fmt.Errorf("load deck %d: expected 2 editions, got %d", number, len(resp.Data))
	}

	arabic, translated := resp.Data[0], resp.Data[1]
	if len(arabic.Ayahs) != len(translated.Ayahs) {
		return nil, fmt.Errorf("load deck %d: edition verse counts differ (%d vs %d)",
			number, len(arabic.Ayahs), len(translated.Ayahs))
	}

	d := &Deck{
		Number:         arabic.Number,
		Name:           arabic.Name,
		EnglishName:    arabic.EnglishName,
		RevelationType: arabic.RevelationType,
		Items:          make([]Item, 0, len(arabic.Ayahs)),
	}
	for i, a := range arabic.Ayahs {
		d.Items = append(d.Items, Item{
			ID:           ItemID(arabic.Number, a.NumberInSurah),
			Number:       a.NumberInSurah,
			GlobalNumber: a.Number,
			Arabic:       a.Text,
			Translation:  translated.Ayahs[i].Text,
		})
	}
	return d, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
