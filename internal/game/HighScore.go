package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "high_scores"

type Score struct {
	ID         int
	RoundID    string
	PlayerName string
	Score      int
	Ticks      int
	CreatedAt  time.Time
}

// ScoreStore keeps the results of finished rounds.
type ScoreStore interface {
	SavePlayersHighScore(score Score) error
	GetHighScores(limit, offset int) ([]Score, error)
	GetTotalScoreCount() (int, error)
}

type HighScoreService struct {
	db *sql.DB
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", dbPath, err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return service, nil
}

// createTable creates the high_scores table if it does not exist.
func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		round_id TEXT NOT NULL UNIQUE,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("High scores table ensured.")
	return nil
}

func (serviceImpl *HighScoreService) SavePlayersHighScore(score Score) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (round_id, player_name, score, ticks, created_at)
	VALUES (?, ?, ?, ?, ?);`

	createdAt := score.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := serviceImpl.db.Exec(insertSQL, score.RoundID, score.PlayerName, score.Score, score.Ticks, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", score.PlayerName, err)
	}

	return nil
}

// GetHighScores retrieves a page of scores, best first. Ties go to the
// shorter round.
func (serviceImpl *HighScoreService) GetHighScores(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, round_id, player_name, score, ticks, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, ticks ASC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score

	for rows.Next() {
		var score Score
		err := rows.Scan(&score.ID, &score.RoundID, &score.PlayerName, &score.Score, &score.Ticks, &score.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return scores, nil
}

func (serviceImpl *HighScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	err := serviceImpl.db.QueryRow(countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
