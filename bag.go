package bbow

import (
	"iter"
	"sort"
	"strings"
)

// entry is one slot of the bag: a normalized word, its count of occurrences
// and whether the key's memory is owned by the bag.
type entry struct {
	word  string
	count int
	// owned is true when lowercasing produced a new string. A borrowed key
	// is a substring of an ingested fragment and keeps that fragment
	// reachable until the bag itself is released.
	owned bool
}

// Bag accumulates words from one or more text fragments. Each key is a word
// found in some ingested text; the corresponding value is the count of
// occurrences. Entries are kept sorted, so enumeration is lexicographic.
//
// Entries are stored in a sorted slice searched with binary search; ordered
// traversal is a plain walk of the slice.
//
// A Bag is not safe for concurrent use. Callers that ingest from multiple
// goroutines coordinate externally.
type Bag struct {
	entries []entry
	total   int
}

// New returns an empty Bag. The zero value is also ready to use.
func New() *Bag {
	return &Bag{}
}

// ExtendFromText parses target and adds the sequence of valid words
// contained in it to this bag. It is a builder method: calls can be
// conveniently chained to build up a bag covering multiple texts, and
// counts accumulate across calls.
//
// Ingestion never fails. Empty input, or input containing no valid words,
// simply contributes nothing.
func (b *Bag) ExtendFromText(target string) *Bag {
	for _, token := range strings.Fields(target) {
		word := trimToWord(token)
		if !isWord(word) {
			continue
		}
		owned := false
		if hasUppercase(word) {
			word = strings.ToLower(word)
			owned = true
		}
		b.add(word, owned)
	}
	return b
}

// add records one occurrence of word. The first insertion decides the key
// instance kept, and with it the owned flag; later occurrences of the same
// word only bump the count.
func (b *Bag) add(word string, owned bool) {
	i, found := b.search(word)
	if found {
		b.entries[i].count++
	} else {
		b.entries = append(b.entries, entry{})
		copy(b.entries[i+1:], b.entries[i:])
		b.entries[i] = entry{word: word, count: 1, owned: owned}
	}
	b.total++
}

// search locates word in the sorted entries. When not found, the returned
// index is the insertion position that keeps the entries sorted.
func (b *Bag) search(word string) (int, bool) {
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].word >= word
	})
	return i, i < len(b.entries) && b.entries[i].word == word
}

// MatchCount reports the number of occurrences of keyword indexed by this
// bag. The keyword should be lowercase and not contain punctuation, as per
// the rules of the bag: otherwise it will not match and 0 is returned.
// Queries are never normalized.
func (b *Bag) MatchCount(keyword string) int {
	if i, found := b.search(keyword); found {
		return b.entries[i].count
	}
	return 0
}

// Words returns the distinct words currently held, in lexicographic order.
// The sequence is lazy and restartable: each range over it walks the bag's
// contents as of that iteration, and breaking out early stops the walk. It
// never consumes or mutates the bag.
func (b *Bag) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range b.entries {
			if !yield(b.entries[i].word) {
				return
			}
		}
	}
}

// Count reports the overall number of words contained in this bag.
// Multiple occurrences are counted separately.
func (b *Bag) Count() int {
	return b.total
}

// Len reports the number of distinct words contained in this bag, not
// considering the number of occurrences.
func (b *Bag) Len() int {
	return len(b.entries)
}

// IsEmpty reports whether this bag holds no words.
func (b *Bag) IsEmpty() bool {
	return b.Len() == 0
}
