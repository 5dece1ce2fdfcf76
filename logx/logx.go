// Package logx wraps zap.Logger with the three-level verbosity scheme the
// CLI's --verbosity flag exposes (§6), and a warning helper shaped for the
// catalogue's single log-line-per-match output.
package logx

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger at the given verbosity: 0 warnings-and-above
// only, 1 adds info, 2 adds debug. Passed by reference into the analyzer,
// never as a package-level singleton (§5: "no shared mutable state exists
// between analyzer instances").
func New(verbosity int) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch {
	case verbosity >= 2:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case verbosity == 1:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

// Danger logs one catalogue match as an informational line identifying
// the pattern name, signature, indices, and source file (§6 "Output").
func Danger(log *zap.Logger, name, signature string, indices []int, file string) {
	log.Info(fmt.Sprintf("%s (%s) (%v) is dangerous in %s", name, signature, indices, file),
		zap.String("pattern", name),
		zap.String("signature", signature),
		zap.Ints("indices", indices),
		zap.String("file", file),
	)
}
