package game

import (
	"errors"
	"fmt"

	"deepfloor/internal/cache"
	"deepfloor/internal/render"
	"deepfloor/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Viewer drives a Session from a terminal.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session
}

// NewViewer binds a started session to an initialized screen.
func NewViewer(screen tcell.Screen, session *Session) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  session,
	}
}

// Run is the main loop. It returns when the viewer quits.
func (v *Viewer) Run() {
	v.session.addMessage("Use hjklyubn or arrow keys to move. Enter, > or < take stairs.")
	for {
		v.Draw()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer = render.NewRenderer(v.screen)
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			v.processAction(action)
		case nil:
			return
		}
	}
}

// Draw renders the active floor and the status bar.
func (v *Viewer) Draw() {
	s := v.session
	pos := s.ViewerPos()
	v.renderer.CenterOn(s.Map(), pos.X, pos.Y)
	v.renderer.DrawFrame(s.World(), s.Map(), s.Viewer())

	status := render.Status{Coord: s.Coord(), Under: s.underViewer().Name}
	if obs, ok := system.ObserverOf(s.World(), s.Viewer()); ok {
		status.Vision, status.Light = obs.Vision, obs.Light
		status.Radius = system.SightRadius(obs.Vision, obs.Light)
	}
	v.renderer.DrawHUD(status, s.Messages())
}

// processAction handles one viewer action.
func (v *Viewer) processAction(action Action) {
	s := v.session
	var err error
	switch action {
	case ActionWait:
		s.runLog.Turns++
		s.addMessage("You wait.")
	case ActionStairs:
		err = s.TakeStairs()
	case ActionDescend:
		err = s.TakeStairsDown()
	case ActionAscend:
		err = s.TakeStairsUp()
	default:
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			_, err = s.Move(dx, dy)
		}
	}
	switch {
	case err == nil, errors.Is(err, ErrNoStairs), errors.Is(err, ErrNoFloorAbove):
	case errors.Is(err, cache.ErrPersist), errors.Is(err, cache.ErrLoad):
		s.addMessage(fmt.Sprintf("The stairs will not budge: %v", err))
	default:
		s.addMessage(fmt.Sprintf("Something went wrong: %v", err))
	}
}
