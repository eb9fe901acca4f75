package models

import "time"

// Session is a locally persisted login session. The client saves the last
// issued access token so a restart can resume without re-entering
// credentials, as long as the token has not expired server-side.
type Session struct {
	Username string    `json:"username"`
	Token    string    `json:"token"`
	SavedAt  time.Time `json:"saved_at"`
}
