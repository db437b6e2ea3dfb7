package loop

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// tickToken fires the current fall timer in a script.
const tickToken = "tick"

// Step is one scripted input: a key, a control, or a timer tick.
type Step struct {
	Token string
	Msg   blockfall.Msg // nil for ticks
}

// IsTick reports whether the step fires the timer.
func (s Step) IsTick() bool {
	return s.Msg == nil
}

// ParseStep parses a single script token. Controls are matched by name
// ("start", "speed-up"), everything else must be a movement key.
func ParseStep(token string) (Step, error) {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, tickToken) {
		return Step{Token: tickToken}, nil
	}
	if c, ok := core.ParseControl(token); ok {
		return Step{Token: token, Msg: blockfall.ControlMsg(c)}, nil
	}
	if core.ParseKey(token) != core.IntentNone {
		return Step{Token: token, Msg: blockfall.KeyMsg(token)}, nil
	}
	return Step{}, fmt.Errorf("unknown step %q", token)
}

// ParseScript splits a script on whitespace and commas and parses each token.
func ParseScript(script string) ([]Step, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	steps := make([]Step, 0, len(fields))
	for i, f := range fields {
		step, err := ParseStep(f)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Replay applies steps to game synchronously, without wall-clock time.
// A tick step fires whatever timer is armed at that point, so ticks while
// stopped or paused are dropped like any stale tick. fn, if set, sees the
// snapshot after every step.
func Replay(game *blockfall.Game, steps []Step, fn func(i int, step Step, snap blockfall.Snapshot)) blockfall.Snapshot {
	snap := game.Snapshot()
	for i, step := range steps {
		msg := step.Msg
		if step.IsTick() {
			msg = blockfall.TickMsg{Gen: game.Timer().Gen}
		}
		snap = game.Update(msg)
		if fn != nil {
			fn(i, step, snap)
		}
	}
	return snap
}
