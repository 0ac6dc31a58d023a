package importexport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const (
	maxDelimiterSampleRecords = 20
	wordColumns               = 5
)

// ParseWordsCSV reads prompt, translation and three distractors per row.
// Rows that are blank, short or fail validation are counted as skipped.
func ParseWordsCSV(data []byte) ([]vocab.WordInput, int, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	delimiter := detectCSVDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	words, skipped := collectWords(records)
	return words, skipped, nil
}

func collectWords(records [][]string) ([]vocab.WordInput, int) {
	var words []vocab.WordInput
	skipped := 0
	checkedHeader := false

	for _, record := range records {
		if isEmptyRecord(record) {
			skipped++
			continue
		}
		if !checkedHeader {
			checkedHeader = true
			if isHeaderRecord(record) {
				continue
			}
		}
		if len(record) < wordColumns {
			skipped++
			continue
		}
		word := vocab.WordInput{
			Russian: strings.TrimSpace(record[0]),
			Target:  strings.TrimSpace(record[1]),
			Wrong1:  strings.TrimSpace(record[2]),
			Wrong2:  strings.TrimSpace(record[3]),
			Wrong3:  strings.TrimSpace(record[4]),
		}
		if err := word.Validate(); err != nil {
			skipped++
			continue
		}
		words = append(words, word)
	}
	return words, skipped
}

func detectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', '\t', ';'}
	bestDelimiter := candidates[0]
	bestScore := -1

	for _, delimiter := range candidates {
		score, err := scoreDelimiter(data, delimiter, maxDelimiterSampleRecords)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestDelimiter = delimiter
		}
	}

	if bestScore <= 0 {
		return ','
	}
	return bestDelimiter
}

// scoreDelimiter counts sampled rows that split into a full word record.
func scoreDelimiter(data []byte, delimiter rune, maxRecords int) (int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	score := 0
	recordsSeen := 0
	for recordsSeen < maxRecords {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if isEmptyRecord(record) {
			continue
		}
		recordsSeen++
		if len(record) >= wordColumns {
			score++
		}
	}
	return score, nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func isHeaderRecord(record []string) bool {
	if len(record) < 2 {
		return false
	}
	left := strings.ToLower(strings.TrimSpace(record[0]))
	right := strings.ToLower(strings.TrimSpace(record[1]))
	prompts := map[string]struct{}{
		"russian": {},
		"word":    {},
		"prompt":  {},
	}
	answers := map[string]struct{}{
		"target":      {},
		"translation": {},
		"answer":      {},
	}
	_, leftOK := prompts[left]
	_, rightOK := answers[right]
	return leftOK && rightOK
}
