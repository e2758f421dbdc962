package metrics

import (
	"jump61/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int // Positions expanded by the search
	Leaves     int // Static evaluations
	Cutoffs    int // Alpha/beta cutoffs
}

type MoveMetric struct {
	Step int
	Side game.Side
	Row  int
	Col  int
	SearchMetric
}

type GameMetric struct {
	Size         int
	StartingSide game.Side
	Winner       game.Side
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(strategy string, depth, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                     {}
func (m *dummyCollector) AddLeaf()                                     {}
func (m *dummyCollector) AddCutoff()                                   {}
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{} }
