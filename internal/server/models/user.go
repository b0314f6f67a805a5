package models

import (
	"encoding/json"
	"time"
)

// User is a registered player. SaveData holds the raw JSON object of the
// last save and is nil until the first one.
type User struct {
	ID             int64
	UserName       string
	PasswordDigest string
	HighScore      int64
	SaveData       json.RawMessage
	CreatedAt      time.Time
}
