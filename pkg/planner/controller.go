package planner

import (
	"context"
	"errors"
	"strings"
	"sync"

	"horairectl/pkg/calendar"
	"horairectl/pkg/logger"
)

// AlertNoSchedule is shown whenever a fetch fails or the server finds nothing.
const AlertNoSchedule = "Aucun horaire n'a été trouvé!"

// ErrStale is returned when a newer action started before this one finished.
// The response was dropped and the state was not touched.
var ErrStale = errors.New("response superseded by a newer request")

// Fetcher is the part of the schedule server the controller needs
type Fetcher interface {
	FetchSchedules(ctx context.Context, sigles []string) ([][]string, error)
	FetchSessions(ctx context.Context, classNames []string) ([]calendar.ClassSession, error)
}

// Controller drives submit, navigation and course removal and owns the UI state.
// Every action takes a new sequence number; only the latest one may commit.
type Controller struct {
	api      Fetcher
	renderer *calendar.Renderer

	mu    sync.Mutex
	seq   uint64
	state State
}

// New returns a controller showing an empty grid.
func New(api Fetcher, renderer *calendar.Renderer) *Controller {
	c := &Controller{api: api, renderer: renderer}
	c.state.Grid = renderer.Clear()
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// begin starts a new action and returns its sequence number.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state.Busy = true
	return c.seq
}

// commit applies fn if seq is still the latest action.
func (c *Controller) commit(seq uint64, fn func(s *State)) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		logger.Debug().Uint64("seq", seq).Uint64("latest", c.seq).Msg("dropping stale response")
		return c.state.clone(), ErrStale
	}

	fn(&c.state)
	c.state.Busy = false
	return c.state.clone(), nil
}

// fail resets the grid and raises the no-schedule alert, unless seq is stale.
// A non-nil courses replaces the course list so the user can fix what they typed.
func (c *Controller) fail(seq uint64, cause error, courses []string) (State, error) {
	state, err := c.commit(seq, func(s *State) {
		if courses != nil {
			s.Courses = courses
		}
		s.Schedules = nil
		s.Index = 0
		s.Sessions = nil
		s.Grid = c.renderer.Clear()
		s.Alert = AlertNoSchedule
	})
	if err != nil {
		return state, err
	}

	logger.Info().Err(cause).Strs("courses", state.Courses).Msg("schedule request failed")
	return state, cause
}

// Submit replaces the course list with the codes in input and shows the first
// alternative. Blank input is ignored.
func (c *Controller) Submit(ctx context.Context, input string) (State, error) {
	courses := ParseCourses(input)
	if len(courses) == 0 {
		return c.State(), nil
	}
	return c.load(ctx, courses)
}

// Add appends a course code and reloads.
func (c *Controller) Add(ctx context.Context, code string) (State, error) {
	current := c.State().Courses
	return c.load(ctx, ParseCourses(strings.Join(append(current, code), ",")))
}

// Remove drops a course code and reloads. Removing the last course clears the grid.
func (c *Controller) Remove(ctx context.Context, code string) (State, error) {
	var remaining []string
	for _, existing := range c.State().Courses {
		if !strings.EqualFold(existing, strings.TrimSpace(code)) {
			remaining = append(remaining, existing)
		}
	}

	if len(remaining) == 0 {
		return c.Clear(), nil
	}
	return c.load(ctx, remaining)
}

// Clear resets to an empty grid with no courses and discards any request in flight.
func (c *Controller) Clear() State {
	seq := c.begin()
	state, _ := c.commit(seq, func(s *State) {
		*s = State{Grid: c.renderer.Clear()}
	})
	return state
}

func (c *Controller) load(ctx context.Context, courses []string) (State, error) {
	// courses stays local until commit so a superseded load leaves no trace
	seq := c.begin()

	schedules, err := c.api.FetchSchedules(ctx, courses)
	if err != nil {
		return c.fail(seq, err, courses)
	}

	sessions, err := c.api.FetchSessions(ctx, schedules[0])
	if err != nil {
		return c.fail(seq, err, courses)
	}

	return c.commit(seq, func(s *State) {
		s.Courses = courses
		s.Schedules = schedules
		s.Index = 0
		s.Sessions = sessions
		s.Grid = c.renderer.Render(sessions)
		s.Alert = ""
	})
}

// Next shows the following alternative. It does nothing on the last one.
func (c *Controller) Next(ctx context.Context) (State, error) {
	state := c.State()
	if !state.HasNext() {
		return state, nil
	}
	return c.Goto(ctx, state.Index+1)
}

// Prev shows the preceding alternative. It does nothing on the first one.
func (c *Controller) Prev(ctx context.Context) (State, error) {
	state := c.State()
	if !state.HasPrev() {
		return state, nil
	}
	return c.Goto(ctx, state.Index-1)
}

// Goto fetches and shows alternative index.
func (c *Controller) Goto(ctx context.Context, index int) (State, error) {
	state := c.State()
	if index < 0 || index >= len(state.Schedules) {
		return state, nil
	}

	seq := c.begin()

	sessions, err := c.api.FetchSessions(ctx, state.Schedules[index])
	if err != nil {
		return c.fail(seq, err, nil)
	}

	return c.commit(seq, func(s *State) {
		s.Index = index
		s.Sessions = sessions
		s.Grid = c.renderer.Render(sessions)
		s.Alert = ""
	})
}
