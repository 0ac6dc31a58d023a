package importexport

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/smith3v/tg-word-drill/pkg/vocab"
	"github.com/xuri/excelize/v2"
)

// ParseWordsXLSX reads the first sheet of a workbook using the same column
// layout as ParseWordsCSV.
func ParseWordsXLSX(data []byte) ([]vocab.WordInput, int, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}

	words, skipped := collectWords(rows)
	return words, skipped, nil
}
