package levelup

import (
	"sync"

	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// State of a level-up session
type State string

const (
	StatePlanned    State = "planned"
	StateAnswering  State = "answering"
	StateValidating State = "validating"
	StateCommitted  State = "committed"
	StateRejected   State = "rejected"
)

var transitions = map[State][]State{
	StatePlanned:    {StateAnswering, StateValidating},
	StateAnswering:  {StateAnswering, StateValidating},
	StateValidating: {StateCommitted, StateRejected},
	StateRejected:   {StateAnswering, StateValidating},
}

func canMove(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Session tracks one level-up from plan to commit. Answers stay in the
// session until Commit; nothing is persisted while answering.
type Session struct {
	mu sync.Mutex

	CharacterID string
	ClassKey    string
	TargetLevel int
	Steps       []*DecisionStep

	state   State
	answers map[string]Answer

	// flagged is the step ID that failed the last validation
	flagged   string
	rejection error
}

func NewSession(characterID, classKey string, targetLevel int, steps []*DecisionStep) *Session {
	return &Session{
		CharacterID: characterID,
		ClassKey:    classKey,
		TargetLevel: targetLevel,
		Steps:       steps,
		state:       StatePlanned,
		answers:     make(map[string]Answer),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Flagged returns the step that failed validation and why
func (s *Session) Flagged() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flagged, s.rejection
}

func (s *Session) move(to State) error {
	if !canMove(s.state, to) {
		return dnderr.InvalidArgumentf("session cannot go from %s to %s", s.state, to)
	}
	s.state = to
	return nil
}

func (s *Session) step(id string) *DecisionStep {
	for _, step := range s.Steps {
		if step.ID == id {
			return step
		}
	}
	return nil
}

// Answer records or replaces the answer to one step
func (s *Session) Answer(a Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step(a.StepID) == nil {
		return dnderr.Validationf(dnderr.ReasonUnexpectedAnswer, "no step %q in this level-up", a.StepID)
	}
	if err := s.move(StateAnswering); err != nil {
		return err
	}

	s.answers[a.StepID] = a
	if s.flagged == a.StepID {
		s.flagged = ""
		s.rejection = nil
	}
	return nil
}

// Clear drops the answer to an optional step
func (s *Session) Clear(stepID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.move(StateAnswering); err != nil {
		return err
	}
	delete(s.answers, stepID)
	return nil
}

// Transaction moves the session to Validating and returns the answers in
// plan order
func (s *Session) Transaction(id string) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.move(StateValidating); err != nil {
		return nil, err
	}

	tx := &Transaction{
		ID:          id,
		CharacterID: s.CharacterID,
		ClassKey:    s.ClassKey,
		TargetLevel: s.TargetLevel,
	}
	for _, step := range s.Steps {
		if a, ok := s.answers[step.ID]; ok {
			tx.Answers = append(tx.Answers, a)
		}
	}
	return tx, nil
}

// Resolve ends validation. A nil error commits the session; otherwise the
// session is rejected and the failing step, if known, is flagged.
func (s *Session) Resolve(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		return s.move(StateCommitted)
	}
	if moveErr := s.move(StateRejected); moveErr != nil {
		return moveErr
	}

	s.rejection = err
	s.flagged = ""
	if id, ok := dnderr.GetMeta(err)["step_id"].(string); ok {
		s.flagged = id
	}
	return nil
}
