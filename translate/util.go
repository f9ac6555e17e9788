package translate

import (
	"context"
	"log/slog"
)

// LevelTrace is below slog.LevelDebug; the translator logs every pass at
// this level.
const LevelTrace slog.Level = slog.LevelDebug - 4

func (t *Translator) trace(msg string, args ...any) {
	t.logger.Log(context.Background(), LevelTrace, msg, args...)
}
