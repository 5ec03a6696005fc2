// Package tui is the terminal presentation layer for maze games.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/difficulty"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

const redrawPeriod = time.Second / 4

const helpLine = "arrows/wasd move  n new maze  t timer  1-4 difficulty  q quit"

var keyDirections = map[tcell.Key]maze.Direction{
	tcell.KeyUp:    maze.Up,
	tcell.KeyRight: maze.Right,
	tcell.KeyDown:  maze.Down,
	tcell.KeyLeft:  maze.Left,
}

var runeDirections = map[rune]maze.Direction{
	'w': maze.Up,
	'd': maze.Right,
	's': maze.Down,
	'a': maze.Left,
}

var (
	styleText   = tcell.StyleDefault
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGoal   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// App mounts one game on a terminal screen and forwards key presses to it.
type App struct {
	screen tcell.Screen
	games  i.GameSessionManager
	logger i.Logger

	id       uuid.UUID
	snapshot game.Snapshot
	notice   string
}

func New(screen tcell.Screen, games i.GameSessionManager, logger i.Logger) *App {
	return &App{screen: screen, games: games, logger: logger}
}

// Mount starts a game at the given level and draws it.
func (a *App) Mount(level difficulty.Level, timerEnabled bool) error {
	id, snapshot, err := a.games.NewSession(level, timerEnabled)
	if err != nil {
		return err
	}
	a.id = id
	a.snapshot = snapshot
	a.draw()
	return nil
}

// Run mounts a game and processes input until the player quits. The screen
// must already be initialised; the caller finalises it.
func (a *App) Run(level difficulty.Level, timerEnabled bool) error {
	if err := a.Mount(level, timerEnabled); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(a.screen, done)

	redraw := time.NewTicker(redrawPeriod)
	defer redraw.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				a.unmount()
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				if a.handleKey(e) {
					a.unmount()
					return nil
				}
			}
		case <-redraw.C:
			a.refresh()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed. The returned channel is closed when forwarding stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleKey applies one key press and reports whether the player asked to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}

	if d, ok := keyDirections[ev.Key()]; ok {
		a.apply(a.games.Move(a.id, d))
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	if d, ok := runeDirections[r]; ok {
		a.apply(a.games.Move(a.id, d))
		return false
	}

	switch r {
	case 'q', 'Q':
		return true
	case 'n', 'N':
		a.apply(a.games.RequestNewMaze(a.id))
	case 't', 'T':
		a.apply(a.games.SetTimerMode(a.id, !a.snapshot.TimerEnabled))
	case '1', '2', '3', '4':
		a.apply(a.games.SelectDifficulty(a.id, difficulty.Level(r-'1')))
	}
	return false
}

func (a *App) apply(s game.Snapshot, err error) {
	a.notice = ""
	if err != nil {
		a.notice = err.Error()
		a.logger.Warning(fmt.Sprintf("terminal action failed: %s", err))
	}
	if s.Maze != nil {
		a.snapshot = s
	}
	a.draw()
}

// refresh picks up countdown progress made between key presses.
func (a *App) refresh() {
	s, err := a.games.Snapshot(a.id)
	if err != nil {
		return
	}
	if s.Remaining != a.snapshot.Remaining || s.Status != a.snapshot.Status {
		a.snapshot = s
		a.draw()
	}
}

func (a *App) unmount() {
	if err := a.games.EndSession(a.id); err != nil {
		a.logger.Warning(fmt.Sprintf("ending game %s: %s", a.id, err))
	}
}

func (a *App) draw() {
	s := a.snapshot
	a.screen.Clear()

	drawText(a.screen, 0, 0, header(s), styleText)

	y := 2
	for _, line := range strings.Split(strings.TrimRight(s.Maze.Render(s.Position), "\n"), "\n") {
		for x, ch := range line {
			a.screen.SetContent(x, y, ch, nil, cellStyle(ch))
		}
		y++
	}

	y++
	if outcome := s.Outcome(); outcome != "" {
		drawText(a.screen, 0, y, fmt.Sprintf(" %s (par %d) press n to play again ", outcome, s.Par), styleStatus)
	} else {
		drawText(a.screen, 0, y, helpLine, styleText)
	}
	if a.notice != "" {
		drawText(a.screen, 0, y+1, a.notice, styleError)
	}
	a.screen.Show()
}

func header(s game.Snapshot) string {
	p := s.Preset
	line := fmt.Sprintf("%s %s %dx%d  find the %s  moves: %d", p.Emoji, p.Name, s.Maze.Rows, s.Maze.Cols, p.GoalEmoji, s.Moves)
	if s.TimerEnabled {
		line += fmt.Sprintf("  time: %ds", s.Remaining)
	}
	return line
}

func cellStyle(ch rune) tcell.Style {
	switch ch {
	case '@':
		return stylePlayer
	case 'G':
		return styleGoal
	case '+', '-', '|':
		return styleWall
	}
	return styleText
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
}
