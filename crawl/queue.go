package crawl

// Queue is a BFS queue with URL deduplication and a cap on the number of
// pages ever admitted.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int
	limit int
}

// NewQueue creates an empty Queue admitting at most limit URLs.
// A non-positive limit means no cap.
func NewQueue(limit int) *Queue {
	return &Queue{seen: make(map[string]bool), limit: limit}
}

// Add enqueues a URL unless it was seen before or the queue is full.
// It reports whether the URL was admitted.
func (q *Queue) Add(url string) bool {
	if q.seen[url] || (q.limit > 0 && len(q.items) >= q.limit) {
		return false
	}
	q.seen[url] = true
	q.items = append(q.items, url)
	return true
}

// HasNext returns true if there are unprocessed URLs.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed URL and advances the pointer.
func (q *Queue) Next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// Len returns the number of admitted URLs.
func (q *Queue) Len() int {
	return len(q.items)
}
