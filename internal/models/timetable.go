package models

import "time"

// Fetch selects which timetable horizon to request from the upstream API.
type Fetch string

const (
	FetchToday Fetch = "today"
	FetchNext  Fetch = "next"
)

// Snapshot is a complete timetable document for one horizon, versioned by an
// opaque uid. Snapshots are always fetched live and never persisted locally.
type Snapshot struct {
	UID    string    `json:"uid"`
	Date   time.Time `json:"date"`
	Groups []Group   `json:"groups"`
}

// Group is a single study group's timetable inside a snapshot.
type Group struct {
	Name    string   `json:"name"`
	UID     string   `json:"uid"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is one timetable entry. Classroom, Subgroup and Teacher are optional.
type Lesson struct {
	Num       string `json:"num"`
	Name      string `json:"name"`
	Classroom string `json:"classroom,omitempty"`
	Subgroup  *int   `json:"subgroup,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
}

// Group returns the group with the given name, or nil if the snapshot does
// not contain it.
func (s *Snapshot) Group(name string) *Group {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			return &s.Groups[i]
		}
	}

	return nil
}

// DefaultGroup is the fallback weekly timetable for a group, used when the
// live snapshot has no entry for that group on the requested date.
type DefaultGroup struct {
	Name    string          `json:"name"`
	Lessons []DefaultLesson `json:"lessons"`
}

// DefaultLesson is a fallback timetable entry. IsEven, when set, restricts
// the lesson to even (true) or odd (false) weeks.
type DefaultLesson struct {
	Num       string `json:"num"`
	Name      string `json:"name"`
	Classroom string `json:"classroom,omitempty"`
	Subgroup  *int   `json:"subgroup,omitempty"`
	Teacher   string `json:"teacher,omitempty"`
	IsEven    *bool  `json:"is_even,omitempty"`
}
