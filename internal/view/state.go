// Package view holds the presentation model of the news page: the search
// state machine, the HTML templates and a plain-text renderer.
package view

import (
	"sync"

	"newsfeed/pkg/news"
)

type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseSearching Phase = "searching"
	PhaseSuccess   Phase = "success"
	PhaseEmpty     Phase = "empty"
	PhaseError     Phase = "error"
)

const ConfigHint = "Make sure your API keys are properly configured in your .env.local file."

// Ticket identifies one search. Only the most recently issued ticket may
// change the displayed outcome.
type Ticket uint64

type Snapshot struct {
	Query    string
	Phase    Phase
	Articles []news.Article
	Error    string
	Ticket   Ticket
}

func (s Snapshot) Busy() bool {
	return s.Phase == PhaseLoading || s.Phase == PhaseSearching
}

func (s Snapshot) Empty() bool  { return s.Phase == PhaseEmpty }
func (s Snapshot) Failed() bool { return s.Phase == PhaseError }

// State is safe for concurrent use.
type State struct {
	mu      sync.Mutex
	latest  Ticket
	settled bool
	snap    Snapshot
}

func NewState(query string) *State {
	return &State{snap: Snapshot{Query: query, Phase: PhaseLoading}}
}

// Begin starts a search. The first search keeps the loading phase, later ones
// switch to searching while the previous articles stay visible.
func (s *State) Begin(query string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	s.snap.Query = query
	s.snap.Error = ""
	s.snap.Ticket = s.latest
	if s.settled {
		s.snap.Phase = PhaseSearching
	}
	return s.latest
}

// Resolve applies the outcome of the search identified by t. It reports false
// and changes nothing when a newer search has been started since.
func (s *State) Resolve(t Ticket, articles []news.Article, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t != s.latest {
		return false
	}

	s.settled = true
	switch {
	case err != nil:
		s.snap.Phase = PhaseError
		s.snap.Error = err.Error()
		s.snap.Articles = nil
	case len(articles) == 0:
		s.snap.Phase = PhaseEmpty
		s.snap.Articles = nil
	default:
		s.snap.Phase = PhaseSuccess
		s.snap.Articles = append([]news.Article(nil), articles...)
	}
	return true
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	snap.Articles = append([]news.Article(nil), s.snap.Articles...)
	return snap
}
