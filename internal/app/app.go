// Package app contains the vectorize command logic, separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/vectorize/blob"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/internal/logger"
	"github.com/arloliu/vectorize/internal/pool"
	"github.com/arloliu/vectorize/pipeline"
)

// VocabExt is the file extension of saved vocabularies.
const VocabExt = ".vocab"

// Run reads columns from in, encodes each of them and writes the codes to out.
//
// Processing steps:
//  1. Validate cfg and read the selected columns
//  2. Encode every column concurrently: fit a fresh pipeline, or transform
//     with the vocabulary saved under cfg.VocabIn
//  3. Save fitted vocabularies under cfg.VocabOut
//  4. Write the codes in the configured output format
//
// ctx cancels reading and encoding.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	compression, delim, err := cfg.Validate()
	if err != nil {
		return err
	}

	log := logger.WithComponent("app")

	cols, err := readColumns(ctx, in, cfg, delim)
	if err != nil {
		return err
	}
	defer releaseColumns(cols)

	if len(cols[0].values) == 0 {
		return errs.ErrEmptyInput
	}

	log.Debug("input read", "columns", len(cols), "rows", len(cols[0].values), "input", cfg.Input)

	var encoder *blob.VocabularyEncoder
	if cfg.VocabOut != "" {
		encoder, err = blob.NewVocabularyEncoder(blob.WithCompression(compression))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.VocabOut, 0o755); err != nil {
			return fmt.Errorf("creating vocabulary directory: %w", err)
		}
	}

	p, err := pipeline.New(pipeline.WithFrequency(cfg.Frequency), pipeline.WithReversed(cfg.Reversed))
	if err != nil {
		return err
	}

	results := make([]columnResult, len(cols))
	defer releaseResults(results)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, col := range cols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var res columnResult
			var err error
			if cfg.VocabIn != "" {
				res, err = transformColumn(col, cfg.VocabIn)
			} else {
				res, err = fitColumn(p, col, encoder, cfg.VocabOut)
			}
			if err != nil {
				return fmt.Errorf("column %q: %w", col.name, err)
			}
			results[k] = res

			log.Debug("column encoded", "column", col.name, "rows", len(res.Codes), "distinct", len(res.Vocabulary))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeResults(out, cfg, delim, results)
}

func fitColumn(p *pipeline.Pipeline, col column, encoder *blob.VocabularyEncoder, dir string) (columnResult, error) {
	res, err := p.Run(col.values)
	if err != nil {
		return columnResult{}, err
	}

	if encoder != nil {
		data, err := encoder.EncodeResult(res)
		if err != nil {
			return columnResult{}, fmt.Errorf("encoding vocabulary: %w", err)
		}
		if err := os.WriteFile(VocabPath(dir, col.name), data, 0o644); err != nil { //nolint:gosec
			return columnResult{}, fmt.Errorf("saving vocabulary: %w", err)
		}
	}

	return columnResult{
		Name:       col.name,
		Codes:      res.Codes,
		Vocabulary: res.Vocabulary,
		Ordering:   format.OrderingOf(res.Frequency, res.Reversed),
	}, nil
}

func transformColumn(col column, dir string) (columnResult, error) {
	vocab, err := LoadVocabulary(VocabPath(dir, col.name))
	if err != nil {
		return columnResult{}, err
	}

	codes, release := pool.GetIntSlice(len(col.values))
	if err := vocab.TransformTo(col.values, codes); err != nil {
		release()
		return columnResult{}, err
	}

	return columnResult{
		Name:       col.name,
		Codes:      codes,
		Vocabulary: vocab.Entries(),
		Ordering:   vocab.Ordering(),
		release:    release,
	}, nil
}

// VocabPath returns the file a column's vocabulary is saved to inside dir.
func VocabPath(dir, columnName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", string(os.PathSeparator), "_").Replace(columnName)
	if name == "" || name == "." || name == ".." {
		name = "_" + name
	}

	return filepath.Join(dir, name+VocabExt)
}

// LoadVocabulary reads and decodes a saved vocabulary file.
func LoadVocabulary(path string) (*blob.VocabularyBlob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}

	vocab, err := blob.DecodeVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("decoding vocabulary %s: %w", path, err)
	}

	logger.WithComponent("app").Debug("vocabulary loaded",
		"path", path,
		"entries", vocab.Len(),
		"ordering", vocab.Ordering().String(),
		"compression", vocab.Compression().String(),
	)

	return vocab, nil
}

// DescribeVocabulary summarizes a vocabulary blob for display.
func DescribeVocabulary(vocab *blob.VocabularyBlob) string {
	ordering := vocab.Ordering()

	return fmt.Sprintf("%d values, fitted on %d rows, frequency=%t reversed=%t, %s compressed",
		vocab.Len(), vocab.TotalCount(), ordering.Frequency(), ordering.Reversed(), vocab.Compression())
}
