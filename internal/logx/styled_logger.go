package logx

import (
	"github.com/pixperk/sheetsql/internal/ui"
	"go.uber.org/zap"
)

// StyledLogger writes every message to zap and echoes a styled line to the
// terminal through the ui package.
type StyledLogger struct {
	logger *zap.Logger
}

func NewStyledLogger() *StyledLogger {
	return &StyledLogger{
		logger: Logger,
	}
}

func (s *StyledLogger) Info(msg string, fields ...zap.Field) {
	s.logger.Info(msg, fields...)
	ui.PrintInfo(msg)
}

func (s *StyledLogger) Success(msg string, fields ...zap.Field) {
	s.logger.Info(msg, fields...)
	ui.PrintSuccess(msg)
}

func (s *StyledLogger) Error(msg string, fields ...zap.Field) {
	s.logger.Error(msg, fields...)
	ui.PrintError(msg)
}

func (s *StyledLogger) Warn(msg string, fields ...zap.Field) {
	s.logger.Warn(msg, fields...)
	ui.PrintWarning(msg)
}

// Debug is not echoed to the terminal.
func (s *StyledLogger) Debug(msg string, fields ...zap.Field) {
	s.logger.Debug(msg, fields...)
}

func (s *StyledLogger) Highlight(msg string, fields ...zap.Field) {
	s.logger.Info(msg, fields...)
	ui.PrintHighlight(msg)
}

// With returns a StyledLogger that adds fields to every zap entry.
func (s *StyledLogger) With(fields ...zap.Field) *StyledLogger {
	return &StyledLogger{
		logger: s.logger.With(fields...),
	}
}

func (s *StyledLogger) GetZapLogger() *zap.Logger {
	return s.logger
}

// StyledLog is the process-wide styled logger.
var StyledLog = NewStyledLogger()

// InitStyledLogger rebinds StyledLog to the current Logger.
func InitStyledLogger() {
	StyledLog = NewStyledLogger()
}
