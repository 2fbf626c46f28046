package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"rulepcg/pkg/engine/world"
)

var (
	// ErrNegativeCount is returned when the excursion or step count is below zero
	ErrNegativeCount = errors.New("excursion and step counts must not be negative")
	// ErrRoomSize is returned when a room dimension is not positive
	ErrRoomSize = errors.New("room dimensions must be positive")
	// ErrNilAgent is returned when a walk is started without an agent
	ErrNilAgent = errors.New("nil agent")
)

// Agent is the carver's state between walks. Callers keep the same Agent to
// resume a walk where the previous one stopped.
type Agent struct {
	world.Position
	// Direction is the current heading; NoDirection makes the next walk pick one at random.
	Direction world.Direction
}

// NewAgent creates an agent at (row, col) with no heading yet
func NewAgent(row, col int) *Agent {
	return &Agent{
		Position:  world.Position{Row: row, Col: col},
		Direction: world.NoDirection,
	}
}

// DrunkParams configures a drunk agent walk
type DrunkParams struct {
	Excursions int // J: number of excursions
	Steps      int // I: movement steps per excursion

	RoomWidth  int // columns spanned by a stamped room
	RoomHeight int // rows spanned by a stamped room

	RoomChance     float64 // base probability of stamping a room after an excursion
	RoomChanceStep float64 // added to the room probability after every failed draw
	TurnChance     float64 // base probability of changing heading after an excursion
	TurnChanceStep float64 // added to the turn probability after every failed draw
}

// Validate checks the walk parameters
func (p DrunkParams) Validate() error {
	if p.Excursions < 0 || p.Steps < 0 {
		return fmt.Errorf("%w: excursions=%d steps=%d", ErrNegativeCount, p.Excursions, p.Steps)
	}
	if p.RoomWidth <= 0 || p.RoomHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrRoomSize, p.RoomWidth, p.RoomHeight)
	}
	return nil
}

// Room is a stamped room after clamping to the grid
type Room struct {
	Center world.Position
	Bounds world.Rect
}

// WalkReport describes what a walk did to the grid
type WalkReport struct {
	Rooms   []Room
	Visited mapset.Set[world.Position] // distinct cells the agent stood on
	Turns   int                        // heading changes from the turn decision
	Bounces int                        // steps spent re-drawing the heading at an edge
}

// StampRoom fills a width x height rectangle centred on center, clamped to the grid.
// Even sizes extend one cell further than half on each side, as integer halves are used.
func StampRoom(grid *world.Grid, center world.Position, width, height int) Room {
	bounds, _ := grid.FillRect(
		center.Row-height/2, center.Col-width/2,
		center.Row+height/2, center.Col+width/2,
		world.Filled,
	)
	return Room{Center: center, Bounds: bounds}
}

// headings lists the directions in the order a heading draw indexes them
var headings = [...]world.Direction{world.East, world.North, world.West, world.South}

// randomDirection returns a random cardinal direction
func randomDirection(rng *rand.Rand) world.Direction {
	return headings[rng.Intn(len(headings))]
}

// Walk runs a drunk agent over a copy of grid and returns the carved copy.
// agent is updated to the final position and heading. Every excursion takes
// params.Steps steps, then rolls for a room and for a heading change; a failed
// roll raises that probability by its step with no upper cap.
func Walk(grid *world.Grid, params DrunkParams, agent *Agent, rng *rand.Rand) (*world.Grid, WalkReport, error) {
	report := WalkReport{Visited: mapset.New[world.Position]()}

	switch {
	case grid == nil:
		return nil, report, ErrNilGrid
	case agent == nil:
		return nil, report, ErrNilAgent
	case rng == nil:
		return nil, report, ErrNilRand
	}
	if err := params.Validate(); err != nil {
		return nil, report, err
	}

	carved := grid.Clone()

	// An agent left outside this grid (e.g. resumed on a smaller map) starts from the nearest cell.
	agent.Row = min(max(agent.Row, 0), carved.Rows()-1)
	agent.Col = min(max(agent.Col, 0), carved.Cols()-1)

	if !agent.Direction.IsValid() {
		agent.Direction = randomDirection(rng)
	}

	roomChance := params.RoomChance
	turnChance := params.TurnChance

	for excursion := 0; excursion < params.Excursions; excursion++ {
		for step := 0; step < params.Steps; step++ {
			if carved.Contains(agent.Position) {
				carved.Set(agent.Row, agent.Col, world.Filled)
				report.Visited.Put(agent.Position)
			}

			next := agent.Position.Step(agent.Direction)
			if !carved.Contains(next) {
				agent.Direction = randomDirection(rng)
				report.Bounces++
				continue
			}

			agent.Position = next
		}

		if rng.Float64() <= roomChance {
			report.Rooms = append(report.Rooms, StampRoom(carved, agent.Position, params.RoomWidth, params.RoomHeight))
			roomChance = params.RoomChance
		} else {
			roomChance += params.RoomChanceStep
		}

		if rng.Float64() <= turnChance {
			agent.Direction = randomDirection(rng)
			report.Turns++
			turnChance = params.TurnChance
		} else {
			turnChance += params.TurnChanceStep
		}
	}

	// The cell the agent stops on is part of its trail too
	carved.Set(agent.Row, agent.Col, world.Filled)
	report.Visited.Put(agent.Position)

	return carved, report, nil
}

// DrunkWalk is a Pass running a drunk agent walk. The Agent persists across
// Apply calls, and the last walk's report is kept in Report.
type DrunkWalk struct {
	Params DrunkParams
	Agent  *Agent
	Report WalkReport
}

// Name returns the name of this pass
func (d *DrunkWalk) Name() string {
	return "Drunk Agent"
}

// Apply carves a copy of grid. A nil Agent is placed at the grid centre.
func (d *DrunkWalk) Apply(grid *world.Grid, rng *rand.Rand) (*world.Grid, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if d.Agent == nil {
		d.Agent = NewAgent(grid.CenterPosition())
	}

	carved, report, err := Walk(grid, d.Params, d.Agent, rng)
	if err != nil {
		return nil, err
	}
	d.Report = report
	return carved, nil
}
