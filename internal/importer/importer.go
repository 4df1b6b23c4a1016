// Package importer acquires input workbooks: directory scanning with a
// filename filter, worksheet reading, and the processed-file lifecycle.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// processedDir is the subdirectory consumed workbooks move into.
const processedDir = "processed"

// FileInfo describes a workbook in the input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the .xlsx files in inputDir whose stem passes filter,
// skipping subdirectories.
func Scan(inputDir, filter string) ([]FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}
		if !MatchesFilter(filter, stem(name)) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		files = append(files, FileInfo{
			Name: name,
			Path: filepath.Join(inputDir, name),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MatchesFilter reports whether a file stem passes a glob filter. A filter of
// the form "!(pattern)" excludes matching stems; any other non-empty filter
// includes them. An empty filter passes everything.
func MatchesFilter(filter, stem string) bool {
	if filter == "" {
		return true
	}
	if neg, ok := strings.CutPrefix(filter, "!("); ok {
		pattern := strings.TrimSuffix(neg, ")")
		matched, err := filepath.Match(pattern, stem)
		if err != nil {
			return true
		}
		return !matched
	}
	matched, err := filepath.Match(filter, stem)
	if err != nil {
		return true
	}
	return matched
}

// MarkProcessed moves a consumed workbook into <dir>/processed/ under its
// timestamped processed name.
func MarkProcessed(dir, fileName string, ts time.Time) error {
	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, fileName)
	dst := filepath.Join(dstDir, ProcessedName(ts, stem(fileName)))
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// stem strips the extension from a file name.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
