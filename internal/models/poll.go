package models

import "time"

// Poll is the upstream version metadata as of the last check. It is produced
// fresh on every successful poll and held only as the "previous poll"
// baseline between ticks.
type Poll struct {
	NextUpdate time.Time  `json:"next_update"`
	Today      *ChangeSet `json:"today,omitempty"`
	Next       *ChangeSet `json:"next,omitempty"`
}

// ChangeSet is compact per-horizon version metadata: the snapshot uid plus
// the last known version id per group. A missing group key means "unknown",
// not "unchanged". Nil ChangeSet means no schedule exists for that horizon.
type ChangeSet struct {
	UID    string            `json:"uid"`
	Groups map[string]string `json:"groups"`
}

// ChangeKind classifies a single group's state against the previous poll.
type ChangeKind int

const (
	ChangeUnknown ChangeKind = iota
	ChangeNew
	ChangeUpdated
	ChangeUnchanged
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNew:
		return "new"
	case ChangeUpdated:
		return "updated"
	case ChangeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Notifiable is a fan-out target: all notification-enabled users subscribed
// to the same group. Built fresh on each notification cycle.
type Notifiable struct {
	Group   string
	UserIDs []int64
}
