package models

// LeaderboardEntry is the independently maintained score projection shown
// on the leaderboard. HighScore is stored exactly as submitted and can be
// negative.
type LeaderboardEntry struct {
	UserName  string `json:"username"`
	HighScore int64  `json:"highScore"`
}
