package menu

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/marks/internal/console"
	lf "github.com/bigredeye/marks/internal/logfield"
	"github.com/bigredeye/marks/internal/marks"
	"github.com/bigredeye/marks/internal/scorer"
)

type State int

const (
	StateIdle State = iota
	StateUpdatingMarks
	StateViewingResults
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUpdatingMarks:
		return "updating_marks"
	case StateViewingResults:
		return "viewing_results"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Transition maps a menu choice to the next state. ok is false for
// choices that are not on the menu.
func Transition(choice string) (next State, ok bool) {
	switch choice {
	case "1":
		return StateUpdatingMarks, true
	case "2":
		return StateViewingResults, true
	case "0":
		return StateExiting, true
	default:
		return StateIdle, false
	}
}

type Menu struct {
	console *console.Console
	updater *marks.Updater
	scorer  *scorer.Scorer
	logger  *zap.Logger

	state State
}

func New(console *console.Console, updater *marks.Updater, scorer *scorer.Scorer, logger *zap.Logger) *Menu {
	return &Menu{
		console: console,
		updater: updater,
		scorer:  scorer,
		logger:  logger.With(lf.Module("menu")),
		state:   StateIdle,
	}
}

func (m *Menu) State() State {
	return m.state
}

func (m *Menu) display() {
	m.console.Println()
	m.console.Title("Marks Management System")
	m.console.Println("1. Update Marks (Teacher)")
	m.console.Println("2. View Final Sorted Results")
	m.console.Println("0. Exit")
}

// Run loops until the user picks 0, the input ends or ctx is cancelled.
// Errors of single operations are reported and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	for m.state != StateExiting {
		if ctx.Err() != nil {
			m.logger.Info("Interrupted")
			m.state = StateExiting
			break
		}

		m.display()
		choice, err := m.console.Prompt("Enter your choice: ")
		if errors.Is(err, console.ErrClosed) {
			m.state = StateExiting
			break
		}
		if err != nil {
			return err
		}

		next, ok := Transition(choice)
		if !ok {
			m.console.Println("Invalid option.")
			continue
		}
		m.logger.Debug("Menu transition", zap.Stringer("from", m.state), zap.Stringer("to", next))
		m.state = next

		switch m.state {
		case StateUpdatingMarks:
			err = m.updateMarks(ctx)
		case StateViewingResults:
			m.viewResults(ctx)
		}

		if marks.IsAborted(err) {
			m.state = StateExiting
			break
		}
		if err != nil {
			m.logger.Error("Failed to update marks", zap.Error(err))
		}
		if m.state != StateExiting {
			m.state = StateIdle
		}
	}

	m.logger.Debug("Menu finished")
	return nil
}

func (m *Menu) updateMarks(ctx context.Context) error {
	teacherID, ok, err := m.console.PromptUint("Enter Teacher ID: ")
	if errors.Is(err, console.ErrClosed) {
		return errors.Wrap(marks.ErrAborted, err.Error())
	}
	if err != nil {
		return err
	}
	if !ok {
		m.console.Println("Invalid Teacher ID.")
		return nil
	}
	return m.updater.Update(ctx, teacherID)
}

func (m *Menu) viewResults(ctx context.Context) {
	ShowResults(ctx, m.console, m.scorer, m.logger)
}

// ShowResults prints the ranked totals. Query failures are logged only.
func ShowResults(ctx context.Context, c *console.Console, s *scorer.Scorer, logger *zap.Logger) {
	standings, err := s.CalcStandings(ctx)
	if err != nil {
		logger.Error("Failed to calc standings", zap.Error(err))
		return
	}

	c.Println()
	c.Title("Final Sorted Results:")
	scorer.Render(c.Out(), standings)
}
