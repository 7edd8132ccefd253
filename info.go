package bbow

import (
	"fmt"
	"io"
)

// PrintInfo writes one line per key, in lexicographic order, stating
// whether the key is borrowed (a zero-copy substring of ingested text) or
// an owned copy produced by lowercasing. It is a debugging aid for
// verifying zero-copy behavior, not part of the functional contract.
func (b *Bag) PrintInfo(w io.Writer) {
	for i := range b.entries {
		e := &b.entries[i]
		if e.owned {
			fmt.Fprintf(w, "This value is owned <%s>\n", e.word)
		} else {
			fmt.Fprintf(w, "This value is borrowed <%s>\n", e.word)
		}
	}
}
