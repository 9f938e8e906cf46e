package app

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/pool"
)

// cancelCheckInterval is how many records are read between context checks.
const cancelCheckInterval = 4096

// maxLineSize bounds a single input line in lines mode.
const maxLineSize = 1 << 20

// column is one selected input column. values comes from the string slice pool.
type column struct {
	name   string
	values []string
}

func releaseColumns(cols []column) {
	for _, col := range cols {
		pool.PutStringSlice(col.values)
	}
}

// readColumns reads the selected columns of r according to cfg.
func readColumns(ctx context.Context, r io.Reader, cfg Config, delim rune) ([]column, error) {
	if cfg.Input == InputCSV {
		return readCSV(ctx, r, cfg, delim)
	}

	return readLines(ctx, r)
}

func readLines(ctx context.Context, r io.Reader) ([]column, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	col := column{name: "0", values: pool.GetStringSlice(0)}
	for n := 0; scanner.Scan(); n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				pool.PutStringSlice(col.values)
				return nil, err
			}
		}
		col.values = append(col.values, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		pool.PutStringSlice(col.values)
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return []column{col}, nil
}

func readCSV(ctx context.Context, r io.Reader, cfg Config, delim rune) ([]column, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.ReuseRecord = true

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	var header []string
	if cfg.Header {
		header = append([]string(nil), first...)
	}

	indexes, names, err := selectColumns(cfg.Columns, header, len(first))
	if err != nil {
		return nil, err
	}

	cols := make([]column, len(indexes))
	for k := range cols {
		cols[k] = column{name: names[k], values: pool.GetStringSlice(0)}
	}

	appendRecord := func(record []string) {
		for k, idx := range indexes {
			cols[k].values = append(cols[k].values, record[idx])
		}
	}

	if !cfg.Header {
		appendRecord(first)
	}

	for n := 1; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				releaseColumns(cols)
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			releaseColumns(cols)
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		appendRecord(record)
	}

	return cols, nil
}

// selectColumns resolves column selectors to field indexes and output names.
//
// A selector matches a header name first and is otherwise parsed as a
// 0-based index. No selectors selects every field.
func selectColumns(selectors []string, header []string, fields int) ([]int, []string, error) {
	nameOf := func(idx int) string {
		if header != nil {
			return header[idx]
		}

		return strconv.Itoa(idx)
	}

	if len(selectors) == 0 {
		indexes := make([]int, fields)
		names := make([]string, fields)
		for i := range indexes {
			indexes[i] = i
			names[i] = nameOf(i)
		}

		return indexes, names, nil
	}

	indexes := make([]int, 0, len(selectors))
	names := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		idx := indexOf(header, sel)
		if idx < 0 {
			n, err := strconv.Atoi(sel)
			if err != nil || n < 0 || n >= fields {
				return nil, nil, fmt.Errorf("%w: unknown column %q (%d fields)", errs.ErrUsage, sel, fields)
			}
			idx = n
		}
		indexes = append(indexes, idx)
		names = append(names, nameOf(idx))
	}

	return indexes, names, nil
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}

	return -1
}
