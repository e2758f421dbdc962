package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"jump61/experiments/metrics"
	"jump61/game"
	"strconv"
	"strings"
)

// ErrMalformedMove is returned for input lines that are not two integers.
var ErrMalformedMove = errors.New("malformed move")

type humanAgent struct {
	side    game.Side
	scanner *bufio.Scanner
}

// NewHumanAgent returns an agent reading "row col" lines from r.
func NewHumanAgent(side game.Side, r io.Reader) Agent {
	return &humanAgent{side: side, scanner: bufio.NewScanner(r)}
}

func (a *humanAgent) Side() game.Side {
	return a.side
}

// FindMove reads the next non-blank line. Malformed lines and illegal
// squares are reported to the caller, which decides whether to ask again.
func (a *humanAgent) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	for a.scanner.Scan() {
		line := strings.TrimSpace(a.scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, metrics.SearchMetric{}, fmt.Errorf("%w: expected \"row col\", got %q", ErrMalformedMove, line)
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("%w: bad row %q: %w", ErrMalformedMove, fields[0], err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, metrics.SearchMetric{}, fmt.Errorf("%w: bad column %q: %w", ErrMalformedMove, fields[1], err)
		}

		if !b.IsLegalAt(a.side, r, c) {
			return 0, metrics.SearchMetric{}, &game.MoveError{Side: a.side, Row: r, Col: c}
		}
		return b.Index(r, c), metrics.SearchMetric{}, nil
	}

	if err := a.scanner.Err(); err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
	}
	return 0, metrics.SearchMetric{}, io.EOF
}

type promptingAgent struct {
	Agent
	out io.Writer
}

// NewPromptingAgent shows the board on out and asks a again while it answers
// with malformed or illegal moves. Any other error is returned.
func NewPromptingAgent(a Agent, out io.Writer) Agent {
	return promptingAgent{Agent: a, out: out}
}

func (a promptingAgent) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	fmt.Fprint(a.out, b)
	for {
		fmt.Fprintf(a.out, "%s> ", a.Side())
		i, m, err := a.Agent.FindMove(b)
		if err == nil || !(errors.Is(err, ErrMalformedMove) || errors.Is(err, game.ErrIllegalMove)) {
			return i, m, err
		}
		fmt.Fprintln(a.out, err)
	}
}
