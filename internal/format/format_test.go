package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Houeta/timetable-bot/internal/format"
	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestSnapshot(t *testing.T) {
	t.Parallel()

	group := &models.Group{
		Name: "M1",
		UID:  "g1",
		Lessons: []models.Lesson{
			{Num: "1", Name: "Math", Classroom: "101", Subgroup: intPtr(2), Teacher: "Smith"},
			{Num: "2", Name: "History"},
		},
	}

	t.Run("dated header for a non-today snapshot", func(t *testing.T) {
		t.Parallel()

		date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC) // a Tuesday
		body := format.Snapshot(group, "snap1", date)

		assert.Contains(t, body, "<b>M1</b>")
		assert.Contains(t, body, "08.09.2026")
		assert.Contains(t, body, "tuesday")
		assert.Contains(t, body, "<code>snap1</code>")
		assert.Contains(t, body, "(1, 101) (sub. 2) Smith\n<b>Math</b>")
		assert.Contains(t, body, "(2) <b>History</b>")
		assert.NotContains(t, body, "today")
	})

	t.Run("today header when the snapshot covers the current day", func(t *testing.T) {
		t.Parallel()

		body := format.Snapshot(group, "snap1", time.Now())

		assert.Contains(t, body, "<code>today</code>")
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	def := &models.DefaultGroup{
		Name: "M1",
		Lessons: []models.DefaultLesson{
			{Num: "1", Name: "EvenOnly", IsEven: boolPtr(true)},
			{Num: "2", Name: "OddOnly", IsEven: boolPtr(false)},
			{Num: "3", Name: "EveryWeek"},
		},
	}

	// ISO week of 2026-01-05 is 2 (even), of 2026-01-12 is 3 (odd).
	evenDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	oddDate := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	t.Run("even week keeps even and unrestricted lessons", func(t *testing.T) {
		t.Parallel()

		body := format.Default(def, evenDate)

		assert.Contains(t, body, "Even week")
		assert.Contains(t, body, "EvenOnly")
		assert.Contains(t, body, "EveryWeek")
		assert.NotContains(t, body, "OddOnly")
	})

	t.Run("odd week keeps odd and unrestricted lessons", func(t *testing.T) {
		t.Parallel()

		body := format.Default(def, oddDate)

		assert.Contains(t, body, "Odd week")
		assert.Contains(t, body, "OddOnly")
		assert.Contains(t, body, "EveryWeek")
		assert.NotContains(t, body, "EvenOnly")
	})

	t.Run("weekday name in header", func(t *testing.T) {
		t.Parallel()

		body := format.Default(def, oddDate)
		assert.True(t, strings.Contains(body, "monday"))
	})
}
