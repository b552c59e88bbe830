package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/svgmin/svgmin"
)

var benchMode bool

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Minify every .svg file under a directory tree",
	Long: `batch walks a directory tree and minifies every file with a .svg
extension. Files are processed concurrently across a worker pool sized to
the host. In regular mode files are rewritten in place; with --bench no
file is written and a single JSON summary is printed to stdout instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&benchMode, "bench", false, "process files without writing, print a JSON summary")
}

type batchResult struct {
	originalLen int
	minifiedLen int
	ok          bool
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	opts, err := buildOptions(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files, err := findSVGFiles(root)
	if err != nil {
		return err
	}

	start := time.Now()
	results := processFiles(files, opts, benchMode)
	elapsed := time.Since(start)

	if benchMode {
		return printBenchSummary(len(files), results, elapsed)
	}

	return printBatchSummary(results)
}

func findSVGFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".svg") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// processFiles fans work out across a bounded worker pool, mirroring the
// batch driver's parallel-iterator sweep over the file list one goroutine
// per core instead of one task per file.
func processFiles(files []string, opts svgmin.Options, dryRun bool) []batchResult {
	results := make([]batchResult, len(files))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = minifyOneFile(files[i], opts, dryRun)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func minifyOneFile(path string, opts svgmin.Options, dryRun bool) batchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchResult{ok: false}
	}

	out, err := svgmin.MinifyWithOptions(data, opts)
	if err != nil {
		return batchResult{originalLen: len(data), minifiedLen: len(data), ok: false}
	}

	if !dryRun {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return batchResult{originalLen: len(data), minifiedLen: len(out), ok: false}
		}
	}

	return batchResult{originalLen: len(data), minifiedLen: len(out), ok: true}
}

type benchSummary struct {
	Files    int     `json:"files"`
	Success  int     `json:"success"`
	Failed   int     `json:"failed"`
	Original int     `json:"original"`
	Minified int     `json:"minified"`
	Saved    int     `json:"saved"`
	TimeMs   float64 `json:"time_ms"`
}

func printBenchSummary(fileCount int, results []batchResult, elapsed time.Duration) error {
	var success, failed, original, minified int
	for _, r := range results {
		original += r.originalLen
		minified += r.minifiedLen
		if r.ok {
			success++
		} else {
			failed++
		}
	}

	summary := benchSummary{
		Files:    fileCount,
		Success:  success,
		Failed:   failed,
		Original: original,
		Minified: minified,
		Saved:    original - minified,
		TimeMs:   elapsed.Seconds() * 1000,
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(summary)
}

func printBatchSummary(results []batchResult) error {
	var processed, failed int
	for _, r := range results {
		if r.ok {
			processed++
		} else {
			failed++
		}
	}
	if printStats {
		fmt.Fprintf(os.Stderr, "Processed %d files, %d failed\n", processed, failed)
	}
	return nil
}
