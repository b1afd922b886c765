// Package loader turns raw ledger files into normalized expense records.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cleared-dev/expensereport/internal/model"
)

// Parser converts a ledger file into expense records.
type Parser interface {
	Parse(r io.Reader) ([]model.Expense, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a ledger file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with the built-in CSV parser using cols.
func DefaultRegistry(cols Columns, logger *slog.Logger) *Registry {
	r := NewRegistry()
	r.Register(NewCSVParser(cols, logger))
	return r
}

// Scan returns the CSV files directly inside dir, sorted by name.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading ledger dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Resolve expands path into ledger files: a directory yields its CSV files,
// anything else is returned as is.
func Resolve(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := Scan(path)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths, nil
}

// LoadFile parses a single ledger file.
func LoadFile(p Parser, path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", path, err)
	}
	return expenses, nil
}

// LoadFiles parses every file in order and concatenates the records.
func LoadFiles(p Parser, paths []string) ([]model.Expense, error) {
	var all []model.Expense
	for _, path := range paths {
		expenses, err := LoadFile(p, path)
		if err != nil {
			return nil, err
		}
		all = append(all, expenses...)
	}
	return all, nil
}
