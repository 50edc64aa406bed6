package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

// VideoResult is the subset of a video search hit the UI needs.
type VideoResult struct {
	Thumbnail string
	Link      string
}

// VideoClient resolves playable video links through a video search proxy
// (an ytmusicapi-style service exposing GET /search?query=&limit=).
// Like CoverClient, it never surfaces errors: all failures mean "not found".
type VideoClient struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
}

func NewVideoClient(baseURL string, timeout time.Duration) *VideoClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &VideoClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Lookup returns the first video hit's thumbnail and playable link, or ok=false.
func (c *VideoClient) Lookup(ctx context.Context, song, artist string) (VideoResult, bool) {
	term := SearchTerm(song, artist)
	if term == "" || c.baseURL == "" {
		return VideoResult{}, false
	}

	cacheKey := "video:" + term
	if v, found := c.cache.Get(cacheKey); found {
		return v.(VideoResult), true
	}

	params := url.Values{}
	params.Set("query", term)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return VideoResult{}, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return VideoResult{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return VideoResult{}, false
	}

	var body struct {
		Result []struct {
			Thumbnails []struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
			Link string `json:"link"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return VideoResult{}, false
	}

	if len(body.Result) == 0 {
		return VideoResult{}, false
	}

	first := body.Result[0]
	result := VideoResult{Link: first.Link}
	if len(first.Thumbnails) > 0 {
		result.Thumbnail = first.Thumbnails[0].URL
	}
	if result.Link == "" && result.Thumbnail == "" {
		return VideoResult{}, false
	}

	c.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, true
}
