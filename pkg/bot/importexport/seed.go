package importexport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

type GlobalSeeder interface {
	SeedGlobalWords(ctx context.Context, entries []vocab.WordInput) (int, error)
}

// LoadSeedFile parses a .csv or .xlsx word list.
func LoadSeedFile(path string) ([]vocab.WordInput, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ParseWordsCSV(data)
	case ".xlsx":
		return ParseWordsXLSX(data)
	default:
		return nil, 0, fmt.Errorf("unsupported seed file type %q", filepath.Ext(path))
	}
}

// SeedFromFile adds the words of a seed file to the global catalog.
func SeedFromFile(ctx context.Context, seeder GlobalSeeder, path string) (int, error) {
	words, skipped, err := LoadSeedFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}
	inserted, err := seeder.SeedGlobalWords(ctx, words)
	if err != nil {
		return 0, err
	}
	logger.Info("seed file imported", "path", path, "inserted", inserted, "skipped", skipped, "total", len(words))
	return inserted, nil
}
