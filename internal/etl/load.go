package etl

import (
	"io"

	"github.com/pixperk/sheetsql/internal/etl/export"
	"github.com/pixperk/sheetsql/internal/logx"
	"go.uber.org/zap"
)

type fileSink interface {
	Files() []string
}

// WriteStatements sends statements to the console (output == ""), one file,
// or shardSize-statement shards, and returns the files written.
func WriteStatements(statements []string, output string, shardSize int, console io.Writer) ([]string, error) {
	sink := export.NewSink(output, shardSize, console)
	if err := sink.Write(statements); err != nil {
		return nil, err
	}

	var files []string
	if fs, ok := sink.(fileSink); ok {
		files = fs.Files()
	}

	logx.Logger.Info("Statements written",
		zap.Int("statements", len(statements)),
		zap.String("output", output),
		zap.Strings("files", files),
	)
	return files, nil
}
