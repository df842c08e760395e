package detector_test

import (
	"testing"

	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/Houeta/timetable-bot/internal/services/detector"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		known    []string
		current  map[string]string
		prev     *models.ChangeSet
		expected map[string]models.ChangeKind
	}{
		{
			name:    "first run: every group is new",
			current: map[string]string{"M1": "u1", "M2": "u2"},
			prev:    nil,
			expected: map[string]models.ChangeKind{
				"M1": models.ChangeNew,
				"M2": models.ChangeNew,
			},
		},
		{
			name:    "unchanged state yields no new or updated entries",
			current: map[string]string{"M1": "u1", "M2": "u2"},
			prev:    &models.ChangeSet{UID: "s1", Groups: map[string]string{"M1": "u1", "M2": "u2"}},
			expected: map[string]models.ChangeKind{
				"M1": models.ChangeUnchanged,
				"M2": models.ChangeUnchanged,
			},
		},
		{
			name:    "differing version id is updated",
			current: map[string]string{"G1": "b", "G2": "x"},
			prev:    &models.ChangeSet{UID: "s1", Groups: map[string]string{"G1": "a", "G2": "x"}},
			expected: map[string]models.ChangeKind{
				"G1": models.ChangeUpdated,
				"G2": models.ChangeUnchanged,
			},
		},
		{
			name:    "group absent from previous poll is new",
			current: map[string]string{"M1": "u2", "M2": "u3"},
			prev:    &models.ChangeSet{UID: "s1", Groups: map[string]string{"M1": "u1"}},
			expected: map[string]models.ChangeKind{
				"M1": models.ChangeUpdated,
				"M2": models.ChangeNew,
			},
		},
		{
			name:    "known group missing from current poll is unknown",
			known:   []string{"M1", "M3"},
			current: map[string]string{"M1": "u1"},
			prev:    &models.ChangeSet{UID: "s1", Groups: map[string]string{"M1": "u1"}},
			expected: map[string]models.ChangeKind{
				"M1": models.ChangeUnchanged,
				"M3": models.ChangeUnknown,
			},
		},
		{
			name:     "empty current poll",
			current:  map[string]string{},
			prev:     &models.ChangeSet{UID: "s1", Groups: map[string]string{"M1": "u1"}},
			expected: map[string]models.ChangeKind{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			det := detector.NewDetector(tc.known)

			changes := det.Detect(tc.current, tc.prev)

			assert.Equal(t, tc.expected, changes)
		})
	}
}

// TestDetector_Deterministic verifies the classification is a pure function
// of its inputs.
func TestDetector_Deterministic(t *testing.T) {
	t.Parallel()

	det := detector.NewDetector([]string{"M1", "M2", "M3"})
	current := map[string]string{"M1": "u2", "M2": "u2"}
	prev := &models.ChangeSet{UID: "s1", Groups: map[string]string{"M1": "u1", "M2": "u2"}}

	first := det.Detect(current, prev)
	for range 10 {
		assert.Equal(t, first, det.Detect(current, prev))
	}
}

func TestHasUpdates(t *testing.T) {
	t.Parallel()

	assert.False(t, detector.HasUpdates(nil))
	assert.False(t, detector.HasUpdates(map[string]models.ChangeKind{
		"M1": models.ChangeUnchanged,
		"M2": models.ChangeUnknown,
	}))
	assert.True(t, detector.HasUpdates(map[string]models.ChangeKind{
		"M1": models.ChangeUnchanged,
		"M2": models.ChangeNew,
	}))
	assert.True(t, detector.HasUpdates(map[string]models.ChangeKind{
		"M1": models.ChangeUpdated,
	}))
}
