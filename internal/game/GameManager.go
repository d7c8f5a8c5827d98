package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultPlayerName = "anonymous"

// GameManager owns the current round and runs the restart/quit state machine
// around it. Step is driven by one caller; Close may come from another
// goroutine when the session goes away.
type GameManager struct {
	mu sync.Mutex

	config     Config
	rng        *rand.Rand
	round      *Round
	pilot      Pilot
	scores     ScoreStore
	playerName string
	logger     *log.Logger

	terminated   bool
	roundsPlayed int
	bestScore    int
}

type Option func(*GameManager)

func WithPilot(pilot Pilot) Option {
	return func(gm *GameManager) { gm.pilot = pilot }
}

func WithScoreStore(store ScoreStore) Option {
	return func(gm *GameManager) { gm.scores = store }
}

func WithPlayerName(name string) Option {
	return func(gm *GameManager) {
		if name != "" {
			gm.playerName = name
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(gm *GameManager) { gm.logger = logger }
}

func GetNewGameManager(cfg Config, opts ...Option) (*GameManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gm := &GameManager{
		config:     cfg,
		rng:        rand.New(rand.NewSource(seed)),
		playerName: defaultPlayerName,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(gm)
	}

	gm.startRound()
	return gm, nil
}

func (gm *GameManager) startRound() {
	gm.round = NewRound(gm.config, gm.rng)
	gm.roundsPlayed++
	gm.logger.Debug("Round started", "round", gm.round.ID, "player", gm.playerName, "rounds_played", gm.roundsPlayed)
}

// Step consumes the key-down events queued since the previous frame and
// advances the game by one frame.
func (gm *GameManager) Step(keys []Key) FrameResult {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.terminated {
		return gm.terminatedFrame()
	}

	for _, k := range keys {
		if k == KeyClose {
			gm.terminate("close")
			return gm.terminatedFrame()
		}
	}

	if gm.round.State() == StateLost {
		return gm.processLostInput(keys)
	}

	if gm.pilot != nil {
		keys = gm.withPilotKey(keys)
	}

	result := gm.round.Tick(keys)
	if result.State == StateLost {
		gm.processRoundLost(result)
	}
	return result
}

// processLostInput looks for the first restart or quit command.
func (gm *GameManager) processLostInput(keys []Key) FrameResult {
	for _, k := range keys {
		switch k {
		case KeyQuit:
			gm.terminate("quit")
			return gm.terminatedFrame()
		case KeyRestart:
			gm.startRound()
			return gm.round.Snapshot()
		}
	}
	return gm.round.Snapshot()
}

// withPilotKey puts the pilot's choice ahead of the player's own keys so that a
// valid player key still wins.
func (gm *GameManager) withPilotKey(keys []Key) []Key {
	pilotKey, err := gm.pilot.NextKey(gm.round.PilotView())
	if err != nil {
		gm.logger.Warn("Pilot failed, skipping its move", "round", gm.round.ID, "error", err)
		return keys
	}
	if pilotKey == KeyNone {
		return keys
	}

	merged := make([]Key, 0, len(keys)+1)
	merged = append(merged, pilotKey)
	return append(merged, keys...)
}

func (gm *GameManager) processRoundLost(result FrameResult) {
	gm.bestScore = max(gm.bestScore, result.Score)
	gm.logger.Info("Round lost", "round", result.RoundID, "player", gm.playerName,
		"reason", result.Reason, "score", result.Score, "ticks", result.Tick)

	if gm.scores == nil {
		return
	}

	highScoreError := gm.scores.SavePlayersHighScore(Score{
		RoundID:    result.RoundID.String(),
		PlayerName: gm.playerName,
		Score:      result.Score,
		Ticks:      result.Tick,
		CreatedAt:  time.Now(),
	})
	if highScoreError != nil {
		gm.logger.Error("High score persist failed", "round", result.RoundID, "error", highScoreError)
	}
}

func (gm *GameManager) terminate(cause string) {
	gm.terminated = true
	gm.logger.Info("Game terminated", "cause", cause, "player", gm.playerName, "rounds_played", gm.roundsPlayed)
}

func (gm *GameManager) terminatedFrame() FrameResult {
	result := gm.round.Snapshot()
	result.State = StateTerminated
	return result
}

// Frame returns the current frame without advancing the game.
func (gm *GameManager) Frame() FrameResult {
	if gm.terminated {
		return gm.terminatedFrame()
	}
	return gm.round.Snapshot()
}

func (gm *GameManager) Config() Config {
	return gm.config
}

func (gm *GameManager) Grid() Grid {
	return gm.round.Grid()
}

func (gm *GameManager) PlayerName() string {
	return gm.playerName
}

func (gm *GameManager) BestScore() int {
	return gm.bestScore
}

func (gm *GameManager) RoundsPlayed() int {
	return gm.roundsPlayed
}

func (gm *GameManager) IsTerminated() bool {
	return gm.terminated
}

// Close releases the pilot, if it holds resources. Later steps run without
// a pilot. Safe to call more than once.
func (gm *GameManager) Close() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if closer, ok := gm.pilot.(interface{ Close() }); ok {
		closer.Close()
	}
	gm.pilot = nil
}
