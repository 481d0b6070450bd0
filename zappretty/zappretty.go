// Inspiration came from a project known as zap-pretty: https://github.com/maoueh/zap-pretty
// Instead of a cli tool however, this is a native encoder built on top of the
// console encoder present in zap.

package zappretty

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05 MST"

var levelColor = map[zapcore.Level]color.Attribute{
	zapcore.DebugLevel:  color.FgBlue,
	zapcore.InfoLevel:   color.FgGreen,
	zapcore.WarnLevel:   color.FgYellow,
	zapcore.ErrorLevel:  color.FgRed,
	zapcore.DPanicLevel: color.FgRed,
	zapcore.PanicLevel:  color.FgRed,
	zapcore.FatalLevel:  color.FgRed,
}

// Register makes the encoder available to zap.Config under the name "cli".
func Register(cfg zapcore.EncoderConfig) error {
	return zap.RegisterEncoder("cli", func(_ zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return NewCLIEncoder(cfg), nil
	})
}

// EncoderConfig returns the development encoder config with every key the
// CLI encoder prints enabled.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.ConsoleSeparator = " "
	return cfg
}

// NewCLIEncoder returns a console encoder that colors its prefix. Structured
// fields are still written as JSON after the message.
func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	cfg.EncodeTime = encodeTimestamp
	cfg.EncodeLevel = encodeLevel
	cfg.EncodeName = encodeLoggerName
	cfg.EncodeCaller = encodeCaller

	if cfg.ConsoleSeparator == "" {
		cfg.ConsoleSeparator = " "
	}

	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	return zapcore.NewConsoleEncoder(cfg)
}

// NewLogger builds a logger that writes CLI-encoded entries to ws.
func NewLogger(ws zapcore.WriteSyncer, level zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	core := zapcore.NewCore(NewCLIEncoder(EncoderConfig()), ws, level)
	return zap.New(core, opts...)
}

func encodeTimestamp(timestamp time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	attr, ok := levelColor[level]
	if !ok {
		attr = color.FgRed
	}

	enc.AppendString(color.New(attr).Sprint(fmt.Sprintf("%-5s", level.CapitalString())))
}

func encodeLoggerName(logger string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgHiBlack).Sprint(logger))
}

func encodeCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
}
