package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/sqlgen"
	"go.uber.org/zap"
)

// Sink receives the finished statements in order.
type Sink interface {
	Write(statements []string) error
}

// NewSink picks the console when output is empty, sharded files when
// batchSize is positive, and a single file otherwise.
func NewSink(output string, batchSize int, w io.Writer) Sink {
	switch {
	case output == "":
		return &ConsoleSink{W: w}
	case batchSize > 0:
		return &ShardedSink{Path: output, BatchSize: batchSize}
	default:
		return &FileSink{Path: output}
	}
}

// ConsoleSink prints each statement under a numbered "-- SQL n:" header.
type ConsoleSink struct {
	W io.Writer
}

func (s *ConsoleSink) Write(statements []string) error {
	bw := bufio.NewWriter(s.W)
	fmt.Fprintf(bw, "\n========== Generated SQL (%d) ==========\n\n", len(statements))
	for i, stmt := range statements {
		fmt.Fprintf(bw, "-- SQL %d:\n%s\n\n", i+1, stmt)
	}
	return bw.Flush()
}

// FileSink writes all statements to one file, separated by blank lines.
type FileSink struct {
	Path string

	written []string
}

func (s *FileSink) Write(statements []string) error {
	if err := writeStatementsFile(s.Path, statements); err != nil {
		return err
	}
	s.written = []string{s.Path}
	return nil
}

func (s *FileSink) Files() []string {
	return s.written
}

// ShardedSink spreads statements over ceil(n/BatchSize) files named
// name_1.ext, name_2.ext, ... in statement order.
type ShardedSink struct {
	Path      string
	BatchSize int

	written []string
}

func (s *ShardedSink) Write(statements []string) error {
	if s.BatchSize < 1 {
		return fmt.Errorf("%w: output batch size is %d", sqlgen.ErrInvalidBatchSize, s.BatchSize)
	}

	total := shardCount(len(statements), s.BatchSize)
	s.written = s.written[:0]
	for i := 0; i < len(statements); i += s.BatchSize {
		end := min(i+s.BatchSize, len(statements))
		index := i/s.BatchSize + 1

		path, err := ShardPath(s.Path, index)
		if err != nil {
			return err
		}
		if err := writeStatementsFile(path, statements[i:end]); err != nil {
			return err
		}
		s.written = append(s.written, path)

		logx.Logger.Info("Wrote output shard",
			zap.String("path", path),
			zap.Int("shard", index),
			zap.Int("shards", total),
			zap.Int("statements", end-i),
		)
	}
	return nil
}

func (s *ShardedSink) Files() []string {
	return s.written
}

func writeStatementsFile(path string, statements []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file '%s': %w", path, err)
	}
	defer file.Close()

	if err := WriteStatements(file, statements); err != nil {
		return fmt.Errorf("could not write output file '%s': %w", path, err)
	}
	return file.Close()
}

// WriteStatements writes each statement on its own line with a blank line
// between statements.
func WriteStatements(w io.Writer, statements []string) error {
	bw := bufio.NewWriter(w)
	for i, stmt := range statements {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(stmt)
		bw.WriteString("\n")
	}
	return bw.Flush()
}
