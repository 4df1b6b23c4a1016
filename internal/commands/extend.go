package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagosx-dev/pagosx/internal/config"
	"github.com/pagosx-dev/pagosx/internal/engine"
	"github.com/pagosx-dev/pagosx/internal/importer"
	"github.com/pagosx-dev/pagosx/internal/output"
	"github.com/pagosx-dev/pagosx/internal/reftab"
	"github.com/pagosx-dev/pagosx/internal/runlog"
)

func newExtendCommand() *cobra.Command {
	var dir string
	var file string

	cmd := &cobra.Command{
		Use:   "extend",
		Short: "Enrich payment ledger workbooks with tax breakdown columns",
		Long: `The extend command reads payment ledger workbooks, computes the Pagos 2.0
tax breakdown per payment group, and writes one pipe-delimited output file per
workbook into the output directory.

By default every matching workbook in the input directory is processed, each
independently and concurrently. Successfully processed workbooks are moved to
the processed archive under a timestamped name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runExtend(absDir, file)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&file, "file", "", "process a single workbook instead of scanning the input directory")

	return cmd
}

// extendResult is the outcome of processing one workbook.
type extendResult struct {
	input  string
	output string
	counts engine.Counts
	err    error
}

func runExtend(root, single string) error {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	tables, err := reftab.Load(filepath.Join(root, cfg.TablesFile))
	if err != nil {
		return fmt.Errorf("loading reference tables: %w", err)
	}

	var files []importer.FileInfo
	if single != "" {
		abs, err := filepath.Abs(single)
		if err != nil {
			return fmt.Errorf("resolving file: %w", err)
		}
		files = []importer.FileInfo{{Name: filepath.Base(abs), Path: abs}}
	} else {
		files, err = importer.Scan(filepath.Join(root, cfg.Dirs.Input), cfg.InputFilter)
		if err != nil {
			return err
		}
	}

	if len(files) == 0 {
		fmt.Println("No workbooks to process.")
		return nil
	}

	start := time.Now()
	fmt.Printf("Processing %d workbook(s)\n", len(files))

	// Each workbook owns its own engine; whole files are independent units,
	// so they fan out across goroutines with no shared state.
	results := make(chan extendResult, len(files))
	var wg sync.WaitGroup
	for _, f := range files {
		wg.Add(1)
		go func(f importer.FileInfo) {
			defer wg.Done()
			results <- processWorkbook(root, cfg, tables, f, start)
		}(f)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var okCount, errCount int
	var entries []runlog.Entry
	for res := range results {
		entry := runlog.Entry{
			Timestamp: start,
			Input:     res.input,
			Output:    res.output,
			Rows:      res.counts.Rows,
			Lines:     res.counts.Lines,
			Skipped:   res.counts.Skipped,
			Status:    "ok",
		}
		if res.err != nil {
			errCount++
			entry.Status = res.err.Error()
			fmt.Printf("  error %s: %v\n", res.input, res.err)
		} else {
			okCount++
			fmt.Printf("  %s -> %s (%d rows in, %d lines out, %d skipped)\n",
				res.input, res.output, res.counts.Rows, res.counts.Lines, res.counts.Skipped)
		}
		entries = append(entries, entry)
	}

	if err := runlog.Append(root, entries); err != nil {
		return fmt.Errorf("appending run log: %w", err)
	}

	fmt.Printf("Done: %d ok, %d failed in %s\n", okCount, errCount, time.Since(start).Round(time.Millisecond))
	if errCount > 0 {
		return fmt.Errorf("%d workbook(s) failed", errCount)
	}
	return nil
}

// processWorkbook runs the engine over one workbook and archives the input on
// success.
func processWorkbook(root string, cfg *config.Config, tables *reftab.Service, f importer.FileInfo, ts time.Time) extendResult {
	res := extendResult{input: f.Name}

	rows, err := importer.ReadSheet(f.Path, cfg.Constants.Sheet)
	if err != nil {
		res.err = err
		return res
	}

	fileStem := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	outName := importer.OutputName(ts, fileStem)
	outPath := filepath.Join(root, cfg.Dirs.Output, outName)
	of, err := os.Create(outPath)
	if err != nil {
		res.err = fmt.Errorf("creating output: %w", err)
		return res
	}
	defer of.Close()

	w := output.NewWriter(of)
	eng := engine.New(engine.Constants{
		Impuesto:       cfg.Constants.Impuesto,
		TipoFactor:     cfg.Constants.TipoFactor,
		ObjetoImpuesto: cfg.Constants.ObjetoImpuesto,
		BaseCurrency:   cfg.Constants.BaseCurrency,
	}, tables, w)

	for i, row := range rows {
		if err := eng.Process(row, i); err != nil {
			res.err = err
			return res
		}
	}
	if err := eng.Close(); err != nil {
		res.err = err
		return res
	}
	if err := w.Flush(); err != nil {
		res.err = err
		return res
	}

	res.counts = eng.Counts()
	res.output = outName

	if err := importer.MarkProcessed(filepath.Dir(f.Path), f.Name, ts); err != nil {
		res.err = err
	}
	return res
}
