// Copyright (c) 2026 CyberSage. All rights reserved.

package score

// Entry is one account's accumulated quiz score.
type Entry struct {
	UserID string `json:"userid"`
	Score  int    `json:"score"`
}

// JobRoleEntry is a leaderboard row for a job-role cohort: the score of
// one account sharing the caller's job role.
type JobRoleEntry struct {
	UserID string `json:"userid"`
	Email  string `json:"email"`
	Score  int    `json:"score"`
}
