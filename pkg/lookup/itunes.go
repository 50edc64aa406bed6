package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultITunesURL = "https://itunes.apple.com/search"

// CoverClient resolves album artwork through the public iTunes Search API.
// Every failure mode (timeout, bad status, malformed body, zero results)
// degrades to "not found": the enrichment pipeline must never see an error
// from here.
type CoverClient struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
}

func NewCoverClient(baseURL string, timeout time.Duration) *CoverClient {
	if baseURL == "" {
		baseURL = defaultITunesURL
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &CoverClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Lookup returns a high resolution artwork URL for the song, or ok=false.
func (c *CoverClient) Lookup(ctx context.Context, song, artist string) (string, bool) {
	term := SearchTerm(song, artist)
	if term == "" {
		return "", false
	}

	cacheKey := "cover:" + term
	if v, found := c.cache.Get(cacheKey); found {
		return v.(string), true
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var result struct {
		ResultCount int `json:"resultCount"`
		Results     []struct {
			ArtworkUrl100 string `json:"artworkUrl100"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", false
	}

	if result.ResultCount == 0 || len(result.Results) == 0 || result.Results[0].ArtworkUrl100 == "" {
		return "", false
	}

	artwork := UpgradeArtworkURL(result.Results[0].ArtworkUrl100)
	c.cache.Set(cacheKey, artwork, cache.DefaultExpiration)
	return artwork, true
}

// UpgradeArtworkURL swaps the 100x100 size token for 600x600. iTunes serves
// the same asset at any requested resolution, so this is a pure string edit.
func UpgradeArtworkURL(artworkURL string) string {
	return strings.Replace(artworkURL, "100x100", "600x600", 1)
}

// SearchTerm builds the free-text search term: "{song} {artist}" when artist
// is present, just "{song}" otherwise.
func SearchTerm(song, artist string) string {
	song = strings.TrimSpace(song)
	artist = strings.TrimSpace(artist)
	if artist == "" {
		return song
	}
	if song == "" {
		return artist
	}
	return song + " " + artist
}
