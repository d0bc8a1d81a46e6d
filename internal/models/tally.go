package models

// KeyCount is one (key, count) pair of a tally, e.g. a client and its request count.
type KeyCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int64  `json:"count" yaml:"count"`
}

// Tally is a counter keyed by string that remembers the order in which keys were
// first seen. Counts start at zero on first access and only grow.
//
// The zero value is ready to use. A Tally is not safe for concurrent writers;
// each analysis run owns its tallies.
type Tally struct {
	counts map[string]int64
	order  []string
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int64)}
}

// Increment inserts key with a zero count if it is new, then adds one.
func (t *Tally) Increment(key string) int64 {
	if t.counts == nil {
		t.counts = make(map[string]int64)
	}
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	return t.counts[key]
}

// Get returns the count for key and whether key was ever incremented.
func (t *Tally) Get(key string) (int64, bool) {
	count, ok := t.counts[key]
	return count, ok
}

// Len is the number of distinct keys.
func (t *Tally) Len() int {
	return len(t.order)
}

// Sum is the total of all counts.
func (t *Tally) Sum() int64 {
	var sum int64
	for _, count := range t.counts {
		sum += count
	}
	return sum
}

// Entries returns a copy of all pairs in first-seen order.
func (t *Tally) Entries() []KeyCount {
	entries := make([]KeyCount, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, KeyCount{Key: key, Count: t.counts[key]})
	}
	return entries
}

// ToMap returns a copy of the counts.
func (t *Tally) ToMap() map[string]int64 {
	m := make(map[string]int64, len(t.counts))
	for key, count := range t.counts {
		m[key] = count
	}
	return m
}
