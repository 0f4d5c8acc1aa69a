package frequency

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/tokenizer"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

type trackerNode struct {
	children map[byte]*trackerNode
	freq     int
	isWord   bool
}

func newTrackerNode() *trackerNode {
	return &trackerNode{children: make(map[byte]*trackerNode)}
}

// Tracker records how often keywords are searched. It is seeded from
// corpus location names with randomized baseline weights and then
// updated live on every keyword search, so unlike the other indexes it
// stays mutable and guards itself with a lock.
type Tracker struct {
	mu        sync.RWMutex
	root      *trackerNode
	rng       *rand.Rand
	minWeight int
	maxWeight int
	logger    *log.Logger
}

// NewTracker creates an empty Tracker whose seed weights are drawn
// uniformly from [minWeight, maxWeight].
func NewTracker(minWeight, maxWeight int) *Tracker {
	return &Tracker{
		root:      newTrackerNode(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		minWeight: minWeight,
		maxWeight: maxWeight,
		logger:    logger.New("tracker"),
	}
}

// Seed sets the random source, for reproducible seeding.
func (t *Tracker) Seed(seed int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rng = rand.New(rand.NewSource(seed))
}

// SeedFromHotels primes the tracker with every distinct word of the
// hotels' location column, each given one random baseline weight.
func (t *Tracker) SeedFromHotels(hotels []model.Hotel, locationColumn string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[string]struct{})
	for _, hotel := range hotels {
		for _, field := range strings.Fields(hotel.Field(locationColumn)) {
			word := tokenizer.CleanKeyword(field)
			if len(word) < 2 {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}

			weight := t.minWeight
			if t.maxWeight > t.minWeight {
				weight += t.rng.Intn(t.maxWeight - t.minWeight + 1)
			}
			t.add(word, weight)
		}
	}
	t.logger.Info("tracker seeded", "terms", len(seen))
}

// SearchAndUpdate records one search for keyword and returns its new
// count. A keyword that is only a proper prefix of recorded terms is
// left untouched and reported as zero; a keyword never seen before is
// recorded with count one.
func (t *Tracker) SearchAndUpdate(keyword string) (int, error) {
	word := tokenizer.CleanKeyword(keyword)
	if len(word) < 2 {
		return 0, apperrors.NewValidationError("keyword", "keyword must contain at least two letters")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for i := 0; i < len(word); i++ {
		child, ok := node.children[word[i]]
		if !ok {
			// Unseen keyword: record the remainder with count one.
			for ; i < len(word); i++ {
				child = newTrackerNode()
				node.children[word[i]] = child
				node = child
			}
			node.isWord = true
			node.freq = 1
			return 1, nil
		}
		node = child
	}

	if !node.isWord {
		return 0, nil
	}
	node.freq++
	return node.freq, nil
}

// TopSearches returns the n most searched keywords, most searched
// first, ties broken alphabetically.
func (t *Tracker) TopSearches(n int) ([]model.WordCount, error) {
	if n <= 0 {
		return nil, apperrors.NewValidationError("n", "n must be positive")
	}

	t.mu.RLock()
	counts := make(map[string]int)
	collect(t.root, nil, counts)
	t.mu.RUnlock()

	return topK(counts, n), nil
}

func (t *Tracker) add(word string, weight int) {
	node := t.root
	for i := 0; i < len(word); i++ {
		child, ok := node.children[word[i]]
		if !ok {
			child = newTrackerNode()
			node.children[word[i]] = child
		}
		node = child
	}
	node.isWord = true
	node.freq += weight
}

func collect(node *trackerNode, prefix []byte, counts map[string]int) {
	if node.isWord {
		counts[string(prefix)] = node.freq
	}
	for c, child := range node.children {
		collect(child, append(prefix, c), counts)
	}
}
