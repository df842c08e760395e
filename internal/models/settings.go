package models

import "time"

// Settings is a persisted per-chat preference record. It is created lazily
// on first interaction and mutated by user commands. Group and Teacher are
// empty until the user picks one.
type Settings struct {
	ID                     int64
	Group                  string
	Teacher                string
	IsNotificationsEnabled bool
	Joined                 time.Time
}
