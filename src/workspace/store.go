// Package workspace holds the problem workspace's state and the transitions
// that are allowed to change it.
package workspace

import (
	"sync"

	"github.com/Protocol-Lattice/codescript/src/problem"
)

// Store holds the displayed problem and the latest feedback. Values go in and
// out as copies, so a reader never sees a half-applied update.
type Store struct {
	mu       sync.RWMutex
	problem  problem.Problem
	feedback problem.FeedbackResult
}

// NewStore returns a store with an empty problem and default feedback.
func NewStore() *Store {
	return &Store{
		problem: problem.Problem{
			Constraints: []string{},
			Examples:    []problem.Example{},
		},
		feedback: problem.DefaultFeedback(),
	}
}

// Problem returns the current problem.
func (s *Store) Problem() problem.Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.problem.Clone()
}

// ReplaceProblem swaps in p as a whole.
func (s *Store) ReplaceProblem(p problem.Problem) {
	p = p.Clone()
	s.mu.Lock()
	s.problem = p
	s.mu.Unlock()
}

// Feedback returns the latest feedback.
func (s *Store) Feedback() problem.FeedbackResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFeedback(s.feedback)
}

// SetFeedback stores r.
func (s *Store) SetFeedback(r problem.FeedbackResult) {
	r = cloneFeedback(r)
	s.mu.Lock()
	s.feedback = r
	s.mu.Unlock()
}

// ResetFeedback restores the "not yet submitted" result.
func (s *Store) ResetFeedback() {
	s.SetFeedback(problem.DefaultFeedback())
}

func cloneFeedback(r problem.FeedbackResult) problem.FeedbackResult {
	out := r
	out.Suggestions = make([]string, len(r.Suggestions))
	copy(out.Suggestions, r.Suggestions)
	return out
}
