package deck

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Source provides deck listings and content. The review UI depends on
// this interface only; Library is the production implementation.
type Source interface {
	List(ctx context.Context) ([]Info, error)
	Load(ctx context.Context, number int, translationID string) (*Deck, error)
}

// Library combines the remote content API with decks imported into a
// local directory. Local decks shadow the API for their numbers.
type Library struct {
	client *Client
	dir    string
}

// NewLibrary creates a Library over client and the local deck directory
// dir. The directory may not exist yet; it is created on first import.
func NewLibrary(client *Client, dir string) *Library {
	return &Library{client: client, dir: dir}
}

// List returns the API catalogue followed by imported local decks.
// When the API is unreachable, local decks alone are returned so the
// app degrades to offline content instead of failing.
func (l *Library) List(ctx context.Context) ([]Info, error) {
	locals := l.localInfos()

	remote, err := l.client.List(ctx)
	if err != nil {
		if len(locals) == 0 {
			return nil, err
		}
		return locals, nil
	}
	return append(remote, locals...), nil
}

// Load fetches one deck, preferring a local file when one exists for
// the number.
func (l *Library) Load(ctx context.Context, number int, translationID string) (*Deck, error) {
	if path, ok := l.localPath(number); ok {
		return ParseFile(path)
	}
	return l.client.Load(ctx, number, translationID)
}

// Import validates the deck file at path and copies it into the local
// deck directory under its deck number.
func (l *Library) Import(path string) (*Deck, error) {
	d, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create deck dir: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck file: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(l.dir, strconv.Itoa(d.Number)+".json")
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("create deck copy: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("copy deck file: %w", err)
	}
	return d, nil
}

// localPath returns the stored file for a deck number, if imported.
func (l *Library) localPath(number int) (string, bool) {
	p := filepath.Join(l.dir, strconv.Itoa(number)+".json")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// localInfos lists imported decks, skipping files that no longer
// validate.
func (l *Library) localInfos() []Info {
	paths, err := filepath.Glob(filepath.Join(l.dir, "*.json"))
	if err != nil {
		return nil
	}

	var infos []Info
	for _, p := range paths {
		d, err := ParseFile(p)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Number:         d.Number,
			Name:           d.Name,
			EnglishName:    d.EnglishName,
			RevelationType: d.RevelationType,
			ItemCount:      len(d.Items),
			Local:          true,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Number < infos[j].Number })
	return infos
}
