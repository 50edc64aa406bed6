package enrich

import (
	"context"
	"sync"

	"vibewise-be/pkg/lookup"
	"vibewise-be/pkg/store"

	"github.com/panjf2000/ants/v2"
)

// DefaultPoolSize bounds how many rows are enriched at the same time.
const DefaultPoolSize = 5

// CoverLookup resolves an artwork URL for a song. ok=false means not found;
// implementations must not return errors for network failures.
type CoverLookup interface {
	Lookup(ctx context.Context, song, artist string) (url string, ok bool)
}

// VideoLookup resolves a thumbnail and playable link for a song.
type VideoLookup interface {
	Lookup(ctx context.Context, song, artist string) (lookup.VideoResult, bool)
}

// Enricher fans candidate rows out over a bounded worker pool and joins the
// per-row lookup results into display records.
type Enricher struct {
	covers CoverLookup
	videos VideoLookup
	pool   *ants.Pool
}

// Option configures an Enricher.
type Option func(*Enricher) error

// WithPoolSize sets the worker pool size. Default is DefaultPoolSize.
func WithPoolSize(size int) Option {
	return func(e *Enricher) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// NewEnricher creates an enrichment pipeline over the two lookup clients.
func NewEnricher(covers CoverLookup, videos VideoLookup, opts ...Option) (*Enricher, error) {
	pool, err := ants.NewPool(DefaultPoolSize)
	if err != nil {
		return nil, err
	}

	e := &Enricher{
		covers: covers,
		videos: videos,
		pool:   pool,
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	return e, nil
}

// Release frees the worker pool.
func (e *Enricher) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Enrich produces exactly one DisplayRecord per input row, in input order.
// Rows are processed concurrently (at most pool-size at once) and each row is
// independent: a row whose lookups fail still yields a record, just without
// cover or link. Enrich blocks until every row has completed.
func (e *Enricher) Enrich(ctx context.Context, rows []store.CandidateRow) []store.DisplayRecord {
	records := make([]store.DisplayRecord, len(rows))

	var wg sync.WaitGroup
	for i := range rows {
		i := i
		row := rows[i]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			records[i] = e.enrichRow(ctx, row)
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool unavailable (released mid-flight): enrich inline so the
			// one-record-per-row contract still holds.
			task()
		}
	}
	wg.Wait()

	return records
}

func (e *Enricher) enrichRow(ctx context.Context, row store.CandidateRow) store.DisplayRecord {
	record := store.DisplayRecord{
		Song:   row.Song,
		Artist: row.Artist,
		Text:   row.Text,
	}

	cover, coverOK := e.covers.Lookup(ctx, row.Song, row.Artist)

	video, videoOK := e.videos.Lookup(ctx, row.Song, row.Artist)
	if videoOK {
		record.Link = video.Link
	}

	// Prefer the iTunes artwork; fall back to the video thumbnail.
	switch {
	case coverOK:
		record.Cover = cover
	case videoOK:
		record.Cover = video.Thumbnail
	}

	return record
}
