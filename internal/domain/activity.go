package domain

import "time"

// ActivityEntry is one recorded user action
type ActivityEntry struct {
	UserID int64     `db:"user_id"`
	Action string    `db:"action"`
	At     time.Time `db:"created_at"`
}
