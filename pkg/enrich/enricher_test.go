package enrich

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"vibewise-be/pkg/lookup"
	"vibewise-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCoverLookup struct {
	fn func(song, artist string) (string, bool)
}

func (f *fakeCoverLookup) Lookup(_ context.Context, song, artist string) (string, bool) {
	return f.fn(song, artist)
}

type fakeVideoLookup struct {
	fn func(song, artist string) (lookup.VideoResult, bool)
}

func (f *fakeVideoLookup) Lookup(_ context.Context, song, artist string) (lookup.VideoResult, bool) {
	return f.fn(song, artist)
}

func coverAlways(url string) *fakeCoverLookup {
	return &fakeCoverLookup{fn: func(string, string) (string, bool) { return url, true }}
}

func coverNever() *fakeCoverLookup {
	return &fakeCoverLookup{fn: func(string, string) (string, bool) { return "", false }}
}

func videoAlways(res lookup.VideoResult) *fakeVideoLookup {
	return &fakeVideoLookup{fn: func(string, string) (lookup.VideoResult, bool) { return res, true }}
}

func videoNever() *fakeVideoLookup {
	return &fakeVideoLookup{fn: func(string, string) (lookup.VideoResult, bool) { return lookup.VideoResult{}, false }}
}

func makeRows(n int) []store.CandidateRow {
	rows := make([]store.CandidateRow, n)
	for i := range rows {
		rows[i] = store.CandidateRow{
			Song:   fmt.Sprintf("song-%d", i),
			Artist: fmt.Sprintf("artist-%d", i),
			Text:   "la la la",
		}
	}
	return rows
}

func TestEnrichOneRecordPerRowInInputOrder(t *testing.T) {
	e, err := NewEnricher(coverAlways("http://img/cover.jpg"), videoAlways(lookup.VideoResult{
		Thumbnail: "http://img/thumb.jpg",
		Link:      "http://video/watch",
	}))
	require.NoError(t, err)
	defer e.Release()

	rows := makeRows(9)
	records := e.Enrich(context.Background(), rows)

	require.Len(t, records, len(rows))
	for i, rec := range records {
		assert.Equal(t, rows[i].Song, rec.Song, "row %d out of order", i)
		assert.Equal(t, rows[i].Artist, rec.Artist)
		assert.Equal(t, "http://img/cover.jpg", rec.Cover)
		assert.Equal(t, "http://video/watch", rec.Link)
	}
}

func TestEnrichBothLookupsFailStillYieldsRecord(t *testing.T) {
	e, err := NewEnricher(coverNever(), videoNever())
	require.NoError(t, err)
	defer e.Release()

	records := e.Enrich(context.Background(), makeRows(3))

	require.Len(t, records, 3)
	for _, rec := range records {
		assert.NotEmpty(t, rec.Song)
		assert.Empty(t, rec.Cover)
		assert.Empty(t, rec.Link)
	}
}

func TestEnrichCoverFallsBackToVideoThumbnail(t *testing.T) {
	e, err := NewEnricher(coverNever(), videoAlways(lookup.VideoResult{
		Thumbnail: "http://img/thumb.jpg",
		Link:      "http://video/watch",
	}))
	require.NoError(t, err)
	defer e.Release()

	records := e.Enrich(context.Background(), makeRows(1))

	require.Len(t, records, 1)
	assert.Equal(t, "http://img/thumb.jpg", records[0].Cover)
	assert.Equal(t, "http://video/watch", records[0].Link)
}

func TestEnrichEmptyInput(t *testing.T) {
	e, err := NewEnricher(coverNever(), videoNever())
	require.NoError(t, err)
	defer e.Release()

	records := e.Enrich(context.Background(), nil)
	assert.Empty(t, records)
}

// Nine rows through a five-worker pool: the observed concurrency high-water
// mark must never exceed the pool size.
func TestEnrichBoundedConcurrency(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	slowCover := &fakeCoverLookup{fn: func(string, string) (string, bool) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return "", false
	}}

	e, err := NewEnricher(slowCover, videoNever(), WithPoolSize(5))
	require.NoError(t, err)
	defer e.Release()

	records := e.Enrich(context.Background(), makeRows(9))

	require.Len(t, records, 9)
	assert.LessOrEqual(t, maxInFlight, 5)
	assert.Greater(t, maxInFlight, 0)
}
