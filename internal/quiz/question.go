// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import "time"

// Question represents a single quiz question targeted at a quiz role track.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`

	// Options is stored as jsonb. True/false questions carry ["True", "False"]
	// rather than a boolean so every question has one uniform shape.
	Options     []string  `json:"options"`
	Answer      string    `json:"answer"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Role        string    `json:"role"`
	Category    string    `json:"category"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Difficulty levels accepted for a question.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether the given difficulty level is accepted.
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Question    *string  `json:"question"`
	Options     []string `json:"options"`
	Answer      *string  `json:"answer"`
	Description *string  `json:"description"`
	Difficulty  *string  `json:"difficulty"`
	Role        *string  `json:"role"`
	Category    *string  `json:"category"`
	Link        *string  `json:"link"`
}
