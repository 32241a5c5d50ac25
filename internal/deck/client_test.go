package deck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metaBody = `{
  "data": {
    "surahs": {
      "references": [
        {"number": 1, "name": "سورة الفاتحة", "englishName": "Al-Faatiha", "revelationType": "Meccan", "numberOfAyahs": 7},
        {"number": 112, "name": "سورة الإخلاص", "englishName": "Al-Ikhlaas", "revelationType": "Meccan", "numberOfAyahs": 4}
      ]
    }
  }
}`

const editionsBody = `{
  "data": [
    {
      "number": 112,
      "name": "سورة الإخلاص",
      "englishName": "Al-Ikhlaas",
      "revelationType": "Meccan",
      "ayahs": [
        {"number": 6222, "numberInSurah": 1, "text": "قُلْ هُوَ ٱللَّهُ أَحَدٌ"},
        {"number": 6223, "numberInSurah": 2, "text": "ٱللَّهُ ٱلصَّمَدُ"}
      ]
    },
    {
      "number": 112,
      "name": "سورة الإخلاص",
      "englishName": "Al-Ikhlaas",
      "revelationType": "Meccan",
      "ayahs": [
        {"number": 6222, "numberInSurah": 1, "text": "Say, He is Allah, [who is] One"},
        {"number": 6223, "numberInSurah": 2, "text": "Allah, the Eternal Refuge"}
      ]
    }
  ]
}`

func TestClient_List(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(metaBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	infos, err := c.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/meta", gotPath)
	require.Len(t, infos, 2)
	assert.Equal(t, 1, infos[0].Number)
	assert.Equal(t, "Al-Faatiha", infos[0].EnglishName)
	assert.Equal(t, 7, infos[0].ItemCount)
	assert.False(t, infos[0].Local)
}

func TestClient_Load(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(editionsBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	d, err := c.Load(context.Background(), 112, "en.sahih")
	require.NoError(t, err)

	assert.Equal(t, "/surah/112/editions/quran-uthmani,en.sahih", gotPath)
	assert.Equal(t, "112", d.ID())
	assert.Equal(t, "Al-Ikhlaas", d.EnglishName)
	require.Len(t, d.Items, 2)

	first := d.Items[0]
	assert.Equal(t, "112:1", first.ID)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 6222, first.GlobalNumber)
	assert.Equal(t, "قُلْ هُوَ ٱللَّهُ أَحَدٌ", first.Arabic)
	assert.Equal(t, "Say, He is Allah, [who is] One", first.Translation)
}

func TestClient_Load_DefaultTranslation(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(editionsBody))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Load(context.Background(), 112, "")
	require.NoError(t, err)
	assert.Equal(t, "/surah/112/editions/quran-uthmani,"+DefaultTranslation, gotPath)
}

func TestClient_Load_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Load(context.Background(), 1, "en.sahih")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Load_MismatchedEditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only one edition in the response.
		w.Write([]byte(`{"data": [{"number": 1, "ayahs": []}]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Load(context.Background(), 1, "en.sahih")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 editions")
}
