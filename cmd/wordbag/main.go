// Command wordbag builds a bag of words from files, a URL or stdin and
// reports it. It is the reference consumer of the bbow package: all
// tokenization and counting happens in the library; this tool only performs
// the I/O and presentation the library deliberately leaves to callers.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	log "log/slog"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/sharedcode/bbow"
)

func main() {
	url := flag.String("url", "", "URL of a text document to fetch and ingest")
	match := flag.String("match", "", "Report the count of this keyword (lowercase, no punctuation)")
	top := flag.Int("top", 0, "Print only the N most frequent words")
	info := flag.Bool("info", false, "Print whether each key borrows from input text or is an owned copy")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	bbow.ConfigureLogging()
	if *verbose {
		bbow.SetLogLevel(log.LevelDebug)
	}

	texts, err := loadInputs(context.Background(), flag.Args(), *url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordbag: %v\n", err)
		os.Exit(1)
	}

	// The bag borrows keys from the loaded texts, which therefore stay
	// reachable until the report below is done. That is fine for a
	// one-shot tool.
	bag := bbow.New()
	for _, text := range texts {
		bag = bag.ExtendFromText(text)
	}

	switch {
	case *match != "":
		fmt.Printf("%s %d\n", *match, bag.MatchCount(*match))
	case *info:
		bag.PrintInfo(os.Stdout)
	case *top > 0:
		for _, wc := range topWords(bag, *top) {
			fmt.Printf("%s\t%d\n", wc.word, wc.count)
		}
		fmt.Printf("%d distinct words, %d total\n", bag.Len(), bag.Count())
	default:
		for word := range bag.Words() {
			fmt.Printf("%s\t%d\n", word, bag.MatchCount(word))
		}
		fmt.Printf("%d distinct words, %d total\n", bag.Len(), bag.Count())
	}
}

// loadInputs reads every named file, and fetches url when given, in
// parallel. Results keep the argument order so ingestion stays
// deterministic. With no files and no url, stdin is read instead.
func loadInputs(ctx context.Context, files []string, url string) ([]string, error) {
	if len(files) == 0 && url == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []string{string(data)}, nil
	}

	texts := make([]string, len(files)+1)
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}
			log.Debug("loaded file", "path", name, "bytes", len(data))
			texts[i] = string(data)
			return nil
		})
	}
	if url != "" {
		g.Go(func() error {
			text, err := fetchText(gctx, url)
			if err != nil {
				return err
			}
			texts[len(files)] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if url == "" {
		texts = texts[:len(files)]
	}
	return texts, nil
}

// fetchText downloads a text document, retrying transient failures with
// Fibonacci backoff. Server-side errors and connection failures are
// retried; client-side errors are not.
func fetchText(ctx context.Context, url string) (string, error) {
	var text string
	b := retry.NewFibonacci(1 * time.Second)
	err := retry.Do(ctx, retry.WithMaxRetries(5, b), func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("failed to fetch %s: %s", url, resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		text = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	log.Debug("fetched document", "url", url, "bytes", len(text))
	return text, nil
}

type wordCount struct {
	word  string
	count int
}

// topWords ranks the bag's words by occurrence count descending, breaking
// ties lexicographically, and returns the first n.
func topWords(bag *bbow.Bag, n int) []wordCount {
	ranked := make([]wordCount, 0, bag.Len())
	for word := range bag.Words() {
		ranked = append(ranked, wordCount{word: word, count: bag.MatchCount(word)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
