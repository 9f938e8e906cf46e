package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/internal/pool"
	"github.com/arloliu/vectorize/table"
)

// flushThreshold is the buffered size at which line output is written out.
const flushThreshold = pool.ColumnBufferDefaultSize

// columnResult is the encoded form of one column.
type columnResult struct {
	Name       string
	Codes      []int
	Vocabulary []table.Entry
	Ordering   format.Ordering // ordering of the table the codes came from
	release    func()          // returns pooled Codes, nil when Codes is not pooled
}

func releaseResults(results []columnResult) {
	for _, res := range results {
		if res.release != nil {
			res.release()
		}
	}
}

type jsonEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type jsonColumn struct {
	Name       string      `json:"name"`
	Frequency  bool        `json:"frequency"`
	Reversed   bool        `json:"reversed"`
	Codes      []int       `json:"codes"`
	Vocabulary []jsonEntry `json:"vocabulary"`
}

type jsonDocument struct {
	Columns []jsonColumn `json:"columns"`
}

func writeResults(w io.Writer, cfg Config, delim rune, results []columnResult) error {
	switch cfg.Output {
	case OutputCSV:
		return writeCSV(w, cfg, delim, results)
	case OutputJSON:
		return writeJSON(w, results)
	default:
		return writeLines(w, delim, results)
	}
}

func rowCount(results []columnResult) int {
	if len(results) == 0 {
		return 0
	}

	return len(results[0].Codes)
}

func writeLines(w io.Writer, delim rune, results []columnResult) error {
	buf := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(buf)

	sep := string(delim)
	for row := range rowCount(results) {
		for k, res := range results {
			if k > 0 {
				buf.WriteString(sep)
			}
			buf.B = strconv.AppendInt(buf.B, int64(res.Codes[row]), 10)
		}
		buf.B = append(buf.B, '\n')

		if buf.Len() >= flushThreshold {
			if _, err := buf.WriteTo(w); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			buf.Reset()
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func writeCSV(w io.Writer, cfg Config, delim rune, results []columnResult) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim

	record := make([]string, len(results))
	if cfg.Header {
		for k, res := range results {
			record[k] = res.Name
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	for row := range rowCount(results) {
		for k, res := range results {
			record[k] = strconv.Itoa(res.Codes[row])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, results []columnResult) error {
	doc := jsonDocument{
		Columns: make([]jsonColumn, len(results)),
	}
	for k, res := range results {
		vocab := make([]jsonEntry, len(res.Vocabulary))
		for i, e := range res.Vocabulary {
			vocab[i] = jsonEntry{Value: e.Value, Count: e.Count}
		}
		doc.Columns[k] = jsonColumn{
			Name:       res.Name,
			Frequency:  res.Ordering.Frequency(),
			Reversed:   res.Ordering.Reversed(),
			Codes:      res.Codes,
			Vocabulary: vocab,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
