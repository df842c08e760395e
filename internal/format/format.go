// Package format renders timetable documents into Telegram HTML bodies.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/Houeta/timetable-bot/internal/models"
)

// Snapshot renders one group's timetable from a live snapshot.
func Snapshot(group *models.Group, snapshotUID string, date time.Time) string {
	var buf strings.Builder

	day := strings.ToLower(date.Weekday().String())
	if sameDay(date, time.Now()) {
		fmt.Fprintf(&buf, "Timetable for <b>%s</b>, <code>today</code> (%s)\n[<code>%s</code>]\n\n",
			group.Name, day, snapshotUID)
	} else {
		fmt.Fprintf(&buf, "Timetable for <b>%s</b>, <code>%s</code> (%s)\n[<code>%s</code>]\n\n",
			group.Name, date.Format("02.01.2006"), day, snapshotUID)
	}

	for _, lesson := range group.Lessons {
		writeLesson(&buf, lesson.Num, lesson.Name, lesson.Classroom, lesson.Subgroup, lesson.Teacher)
	}

	return buf.String()
}

// Default renders the fallback weekly timetable for the given date. Lessons
// restricted to the other week parity are left out.
func Default(def *models.DefaultGroup, date time.Time) string {
	var buf strings.Builder

	even := isEvenWeek(date)
	fmt.Fprintf(&buf, "Default timetable for <b>%s</b>, <code>%s</code>\n",
		def.Name, strings.ToLower(date.Weekday().String()))
	if even {
		buf.WriteString("Even week\n\n")
	} else {
		buf.WriteString("Odd week\n\n")
	}

	for _, lesson := range def.Lessons {
		if lesson.IsEven != nil && *lesson.IsEven != even {
			continue
		}
		writeLesson(&buf, lesson.Num, lesson.Name, lesson.Classroom, lesson.Subgroup, lesson.Teacher)
	}

	return buf.String()
}

func writeLesson(buf *strings.Builder, num, name, classroom string, subgroup *int, teacher string) {
	if classroom == "" {
		fmt.Fprintf(buf, "(%s) <b>%s</b>\n\n", num, name)
		return
	}

	fmt.Fprintf(buf, "(%s, %s)", num, classroom)
	if subgroup != nil {
		fmt.Fprintf(buf, " (sub. %d)", *subgroup)
	}
	if teacher != "" {
		fmt.Fprintf(buf, " %s", teacher)
	}
	fmt.Fprintf(buf, "\n<b>%s</b>\n\n", name)
}

func isEvenWeek(date time.Time) bool {
	_, week := date.ISOWeek()
	return week%2 == 0
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
