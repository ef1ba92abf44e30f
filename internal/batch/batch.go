// Package batch drives the single-article pipeline over a list of URLs.
// Failures are counted and reported, never fatal to the remaining items.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"pravenc_scrap/internal/fetch"
)

// ProcessFunc scrapes one URL and returns the written path.
type ProcessFunc func(ctx context.Context, url string) (string, error)

type Summary struct {
	Successful int
	Failed     int
	Total      int
}

// ExitCode is 1 if any unit of work failed, 0 otherwise.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// ReadURLFile reads newline-separated URLs, skipping blank lines.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}
	defer f.Close()

	urls := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}
	return urls, nil
}

// Run processes every URL in order, observing a fixed delay between items
// (none after the last). A per-item error is reported and counted; the run
// continues with the remaining items.
func Run(ctx context.Context, urls []string, delay time.Duration, process ProcessFunc) Summary {
	sum := Summary{Total: len(urls)}
	for i, u := range urls {
		fmt.Printf("[%d/%d] Processing: %s\n", i+1, len(urls), u)
		path, err := process(ctx, u)
		if err != nil {
			fmt.Fprintf(os.Stderr, "    failed: %v\n", err)
			sum.Failed++
		} else {
			fmt.Printf("    wrote %s\n", path)
			sum.Successful++
		}
		if i < len(urls)-1 {
			if err := fetch.Wait(ctx, delay); err != nil {
				sum.Failed += len(urls) - i - 1
				return sum
			}
		}
	}
	return sum
}

// PrintSummary writes the final batch report.
func PrintSummary(s Summary) {
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Batch processing completed:")
	fmt.Printf("  Successful: %d\n", s.Successful)
	fmt.Printf("  Failed: %d\n", s.Failed)
	fmt.Printf("  Total: %d\n", s.Total)
}
