package metrics

import (
	"time"

	"dominoes/engine"
)

type GameMetric struct {
	Status    engine.Status
	Winner    int // Player order, 0 when nobody won
	Remaining int
	Turns     int
	Plays     int
	Passes    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector is a Recorder that tallies one game.
type Collector interface {
	engine.Recorder
	Start()
	Complete() GameMetric
}

type collector struct {
	startTime time.Time
	plays     int
	passes    int
	last      engine.Event
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.plays = 0
	m.passes = 0
	m.last = engine.Event{}
}

func (m *collector) Record(ev engine.Event) {
	switch ev.Kind {
	case engine.Played:
		m.plays++
	case engine.Passed:
		m.passes++
	}
	m.last = ev
}

func (m *collector) Complete() GameMetric {
	end := time.Now()
	return GameMetric{
		Status:    m.last.Result.Status,
		Winner:    m.last.Result.Winner,
		Remaining: m.last.Result.Remaining,
		Turns:     m.last.Turn,
		Plays:     m.plays,
		Passes:    m.passes,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}
}
