// Package bbow reduces in-memory text to a "big bag of words": a sorted
// mapping from each distinct word form to its count of occurrences. Bags of
// words are a foundational primitive for text analysis and machine learning
// feature extraction, and this package is the accumulator other components
// build upon.
//
// Words are separated by whitespace and consist of a span of one or more
// consecutive letters (any Unicode code point in the "letter" class) with no
// internal punctuation: leading and trailing punctuation are removed, and a
// token left with a non-letter inside it is dropped entirely. For example,
// the text
//
//	"It ain't over untïl it ain't, over."
//
// contains the sequence of words "It", "over", "untïl", "it", "over".
// Words containing uppercase letters are represented in the bag by their
// lowercase equivalent.
//
// The implementation uses zero-copy keys when reasonably possible to improve
// performance and reduce memory usage: a word that needed no lowercasing is
// stored as a substring of the ingested text and shares its backing memory,
// which keeps that text reachable for as long as the bag holds the key.
// Ingesting a large buffer therefore pins it in memory until the bag itself
// is released.
package bbow
