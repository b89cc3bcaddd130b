package metrics

import (
	"time"

	"teeko/game"
)

type SearchMetric struct {
	Depth     int
	AlphaBeta bool
	Duration  time.Duration
	Nodes     int // Boards expanded into successors
	Leaves    int // Boards scored by the evaluation function
	Terminals int // Leaves cut off by a win
	Pruned    int // Successors skipped by alpha-beta
}

type MoveMetric struct {
	Step     int
	Player   game.Cell
	Move     game.Move
	Fallback bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Cell
	Winner         game.Cell // Empty if the game hit the turn cap or stalled
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is used by a single search at a time.
type Collector interface {
	Start(depth int, alphaBeta bool)
	AddNode()
	AddLeaf(terminal bool)
	AddPruned(n int)
	Complete() SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, alphaBeta bool) {
	m.metric = SearchMetric{Depth: depth, AlphaBeta: alphaBeta}
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddLeaf(terminal bool) {
	m.metric.Leaves++
	if terminal {
		m.metric.Terminals++
	}
}

func (m *collector) AddPruned(n int) {
	m.metric.Pruned += n
}

func (m *collector) Complete() SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, alphaBeta bool) {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf(terminal bool)           {}
func (m *dummyCollector) AddPruned(n int)                 {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
