package main

import (
	"sync"

	"github.com/Mshel/snake/internal/game"
)

// sessionGames remembers the games one SSH session started so they can be
// released when the client goes away without quitting.
type sessionGames struct {
	mu    sync.Mutex
	games []*game.GameManager
}

func (s *sessionGames) add(gm *game.GameManager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append(s.games, gm)
}

func (s *sessionGames) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, gm := range s.games {
		gm.Close()
	}
	s.games = nil
}
