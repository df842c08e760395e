package detector

import (
	"github.com/Houeta/timetable-bot/internal/models"
)

// Detector classifies per-group timetable changes between two polls. It is
// pure: identical inputs always yield identical classifications.
type Detector struct {
	known []string
}

// NewDetector creates a Detector. The known slice is the configured universe
// of group names; groups from it that are absent from the current poll are
// classified as unknown so that no stale content is sent for them. It may be
// empty.
func NewDetector(known []string) *Detector {
	return &Detector{known: known}
}

// Detect compares the current per-group version ids against the previous
// poll's change set and classifies every group.
//
// With no previous data every current group is new. Otherwise a group absent
// from the previous set is new, a group with a differing version id is
// updated, and a matching version id means unchanged.
func (d *Detector) Detect(current map[string]string, prev *models.ChangeSet) map[string]models.ChangeKind {
	changes := make(map[string]models.ChangeKind, len(current))

	for name, uid := range current {
		switch {
		case prev == nil:
			changes[name] = models.ChangeNew
		default:
			prevUID, ok := prev.Groups[name]
			switch {
			case !ok:
				changes[name] = models.ChangeNew
			case prevUID != uid:
				changes[name] = models.ChangeUpdated
			default:
				changes[name] = models.ChangeUnchanged
			}
		}
	}

	for _, name := range d.known {
		if _, ok := current[name]; !ok {
			changes[name] = models.ChangeUnknown
		}
	}

	return changes
}

// HasUpdates reports whether at least one group is classified as new or
// updated, i.e. whether a notification cycle is warranted at all.
func HasUpdates(changes map[string]models.ChangeKind) bool {
	for _, kind := range changes {
		if kind == models.ChangeNew || kind == models.ChangeUpdated {
			return true
		}
	}

	return false
}
