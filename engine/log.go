package engine

import "github.com/rs/zerolog"

// LogRecorder writes every event to a zerolog logger.
type LogRecorder struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func NewLogRecorder(logger zerolog.Logger, level zerolog.Level) *LogRecorder {
	return &LogRecorder{logger: logger, level: level}
}

func (r *LogRecorder) Record(ev Event) {
	entry := r.logger.WithLevel(r.level).Int("turn", ev.Turn).Int("player", ev.Player)
	switch ev.Kind {
	case Played:
		entry.Stringer("move", ev.Move).Int("tiles", len(ev.Chain)).Msg("played")
	case Passed:
		entry.Msg("passed")
	case Ended:
		entry.Stringer("status", ev.Result.Status).Int("winner", ev.Result.Winner).Int("remaining", ev.Result.Remaining).Msg("game over")
	}
}
