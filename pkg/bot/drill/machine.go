package drill

import (
	"strings"
	"time"
)

type State string

const (
	StateIdle                  State = "idle"
	StateAwaitingAnswer        State = "awaiting_answer"
	StateAwaitingChoice        State = "awaiting_post_answer_choice"
	StateAwaitingCustomWord    State = "awaiting_custom_word"
	StateAwaitingDeletePrompt  State = "awaiting_delete_prompt"
	StateAwaitingDeleteConfirm State = "awaiting_delete_confirm"
)

// MaxAttempts is how many answers a user gets per question.
const MaxAttempts = 2

func (s State) Valid() bool {
	switch s {
	case StateIdle, StateAwaitingAnswer, StateAwaitingChoice,
		StateAwaitingCustomWord, StateAwaitingDeletePrompt, StateAwaitingDeleteConfirm:
		return true
	}
	return false
}

// Session is one user's position in the conversation. Transition methods
// return a new value and never touch storage.
type Session struct {
	SessionID      string
	ChatID         int64
	UserID         int64
	State          State
	WordID         uint
	Target         string
	Attempt        int
	PendingWordID  uint
	PendingPrompt  string
	LastActivityAt time.Time
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeRetry
	OutcomeFailed
	OutcomeSkipped
	OutcomeAborted
)

// Reveal reports whether the correct answer should be shown to the user.
func (o Outcome) Reveal() bool {
	return o == OutcomeFailed || o == OutcomeSkipped
}

func (s Session) idle() Session {
	s.State = StateIdle
	s.WordID = 0
	s.Target = ""
	s.Attempt = 0
	s.PendingWordID = 0
	s.PendingPrompt = ""
	return s
}

// Ask moves to the first attempt at answering wordID.
func (s Session) Ask(wordID uint, target string) Session {
	s = s.idle()
	s.State = StateAwaitingAnswer
	s.WordID = wordID
	s.Target = target
	s.Attempt = 1
	return s
}

// Answer checks input against the current target. A wrong first answer
// keeps the same word for another attempt, a wrong last answer ends the
// question.
func (s Session) Answer(input string) (Session, Outcome) {
	if s.State != StateAwaitingAnswer {
		return s, OutcomeNone
	}
	if strings.TrimSpace(input) == s.Target {
		wordID := s.WordID
		s = s.idle()
		s.State = StateAwaitingChoice
		s.WordID = wordID
		return s, OutcomeCorrect
	}
	if s.Attempt < MaxAttempts {
		s.Attempt++
		return s, OutcomeRetry
	}
	return s.idle(), OutcomeFailed
}

func (s Session) Skip() (Session, Outcome) {
	if s.State != StateAwaitingAnswer {
		return s, OutcomeNone
	}
	return s.idle(), OutcomeSkipped
}

// Home drops whatever the user was doing without revealing anything.
func (s Session) Home() (Session, Outcome) {
	if s.State == StateAwaitingAnswer {
		return s.idle(), OutcomeAborted
	}
	return s.idle(), OutcomeNone
}

// Choose resolves the prompt shown after a correct answer. It returns the
// word to delete, or zero when the user keeps it.
func (s Session) Choose(remove bool) (Session, uint) {
	if s.State != StateAwaitingChoice {
		return s, 0
	}
	wordID := s.WordID
	s = s.idle()
	if !remove {
		return s, 0
	}
	return s, wordID
}

func (s Session) AwaitCustomWord() Session {
	s = s.idle()
	s.State = StateAwaitingCustomWord
	return s
}

func (s Session) AwaitDeletePrompt() Session {
	s = s.idle()
	s.State = StateAwaitingDeletePrompt
	return s
}

func (s Session) AwaitDeleteConfirm(wordID uint, prompt string) Session {
	s = s.idle()
	s.State = StateAwaitingDeleteConfirm
	s.PendingWordID = wordID
	s.PendingPrompt = prompt
	return s
}

// Confirm resolves a pending deletion. It returns the word to delete, or
// zero when the user declined.
func (s Session) Confirm(yes bool) (Session, uint) {
	if s.State != StateAwaitingDeleteConfirm {
		return s, 0
	}
	wordID := s.PendingWordID
	s = s.idle()
	if !yes {
		return s, 0
	}
	return s, wordID
}

// Finish returns to idle after a one-shot input step such as adding a word.
func (s Session) Finish() Session {
	return s.idle()
}
