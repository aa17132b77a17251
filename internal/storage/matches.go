package storage

import (
	"fmt"
	"time"
)

// MatchRecord is one finished match.
type MatchRecord struct {
	ID            int64
	Profile       string
	Difficulty    string
	PlayerScore   int
	ComputerScore int
	Winner        string // "Player" or "Computer"
	Duration      int    // Duration in seconds
	CreatedAt     time.Time
}

// PlayerWon reports whether the human player won the match.
func (m MatchRecord) PlayerWon() bool {
	return m.Winner == "Player"
}

// MatchStats contains aggregated results for a profile.
type MatchStats struct {
	Profile       string
	Played        int
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int
	LastPlayed    time.Time
}

// WinRate returns the fraction of matches won, 0 when none were played.
func (s MatchStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.Profile == "" {
		m.Profile = DefaultProfile
	}
	result, err := s.db.Exec(
		`INSERT INTO matches (profile, difficulty, player_score, computer_score, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.Profile, m.Difficulty, m.PlayerScore, m.ComputerScore, m.Winner, m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches of a profile, newest first.
func (s *Store) RecentMatches(profile string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, difficulty, player_score, computer_score, winner, duration_secs, created_at
		 FROM matches
		 WHERE profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Profile, &m.Difficulty, &m.PlayerScore, &m.ComputerScore,
			&m.Winner, &m.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		records = append(records, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated results for a profile.
func (s *Store) Stats(profile string) (*MatchStats, error) {
	stats := &MatchStats{Profile: profile}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'Player' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(player_score), 0),
		        COALESCE(SUM(computer_score), 0),
		        MAX(created_at)
		 FROM matches WHERE profile = ?`,
		profile,
	).Scan(&stats.Played, &stats.Wins, &stats.PointsFor, &stats.PointsAgainst, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}

	stats.Losses = stats.Played - stats.Wins
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearMatches deletes the match history of a profile.
func (s *Store) ClearMatches(profile string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
