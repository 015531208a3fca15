package meme

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/memewall/memewall/config"
	"github.com/memewall/memewall/pkg/history"
	"github.com/memewall/memewall/util/log"
)

// MaxFetchAttempts bounds how many times one run may query the API before
// giving up and falling back to the bundled image.
const MaxFetchAttempts = 25

// ErrExhausted is reported when every attempt failed or only produced
// already-shown memes.
var ErrExhausted = errors.New("no new meme found within the attempt budget")

// Source produces one candidate per call. *Client is the production
// implementation.
type Source interface {
	Fetch(ctx context.Context, category config.Category) (*Candidate, error)
}

// Fetcher queries the source until it finds a meme that has not been shown
// yet, recording the winner in the history store.
type Fetcher struct {
	source     Source
	store      *history.Store
	categories []config.Category
	rng        *rand.Rand
}

// NewFetcher creates a Fetcher drawing categories uniformly at random for
// each attempt.
func NewFetcher(source Source, store *history.Store, categories []config.Category) *Fetcher {
	if len(categories) == 0 {
		categories = []config.Category{config.AnyCategory}
	}
	return &Fetcher{
		source:     source,
		store:      store,
		categories: categories,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandForTesting pins the category selection sequence.
func (f *Fetcher) SetRandForTesting(rng *rand.Rand) {
	f.rng = rng
}

// FetchNovel returns the first candidate whose URL is not in the history.
// Each attempt picks its category independently, with replacement; failed
// calls and duplicates both consume an attempt. The winning URL is appended
// to the history and persisted before returning. A canceled context aborts
// the loop instead of counting toward exhaustion.
func (f *Fetcher) FetchNovel(ctx context.Context) (*Candidate, error) {
	for attempt := 0; attempt < MaxFetchAttempts; attempt++ {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		category := f.categories[f.rng.Intn(len(f.categories))]
		log.Debugf("Selected subreddit: %v", category)

		cand, err := f.source.Fetch(ctx, category)
		if err != nil {
			log.Debugf("Fetch attempt %d/%d failed: %v", attempt+1, MaxFetchAttempts, err)
			continue
		}
		if f.store.Contains(cand.URL) {
			log.Debugf("Skipping already shown meme: %s", cand.URL)
			continue
		}

		f.store.Add(cand.URL)
		if err := f.store.Save(); err != nil {
			log.Printf("Failed to persist meme history: %v", err)
		}
		return cand, nil
	}
	return nil, ErrExhausted
}
