package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/Houeta/timetable-bot/internal/services/detector"
	"github.com/Houeta/timetable-bot/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow pins loop tests to an afternoon clock, away from the night branch.
var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestWaitDuration_Clamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		nextUpdate time.Time
		expected   time.Duration
	}{
		{
			name:       "next_update in the past clamps to the minimum",
			nextUpdate: now.Add(-time.Hour),
			expected:   minWait,
		},
		{
			name:       "next_update below the minimum clamps up",
			nextUpdate: now.Add(time.Second),
			expected:   minWait,
		},
		{
			name:       "next_update too far ahead clamps to the maximum",
			nextUpdate: now.Add(48 * time.Hour),
			expected:   maxWait,
		},
		{
			name:       "sane next_update is used as-is",
			nextUpdate: now.Add(37 * time.Minute),
			expected:   37 * time.Minute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := NewPoller(discardLogger(), nil, nil, detector.NewDetector(nil))
			p.prev = &models.Poll{NextUpdate: tc.nextUpdate}

			assert.Equal(t, tc.expected, p.waitDuration(now))
		})
	}
}

func TestWaitDuration_Night(t *testing.T) {
	t.Parallel()

	p := NewPoller(discardLogger(), nil, nil, detector.NewDetector(nil))
	// next_update would say "poll now", but it is 03:30 local time
	now := time.Date(2026, 9, 1, 3, 30, 0, 0, time.UTC)
	p.prev = &models.Poll{NextUpdate: now}

	assert.Equal(t, 2*time.Hour+30*time.Minute, p.waitDuration(now))
}

// TestRun_Scenario runs the loop through the spec scenario: M1's version id
// changes and M2 appears, so the fanout must be triggered with exactly
// M1 updated and M2 new.
func TestRun_Scenario(t *testing.T) {
	mockAPI := new(mocks.APIClient)
	mockNotifier := new(mocks.Notifier)

	seedPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t1", Groups: map[string]string{"M1": "u1"}},
	}
	newPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t2", Groups: map[string]string{"M1": "u2", "M2": "u3"}},
	}
	snap := &models.Snapshot{UID: "t2", Date: fixedNow}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	mockAPI.On("Poll", mock.Anything).Return(seedPoll, nil).Once()
	mockAPI.On("Poll", mock.Anything).Return(newPoll, nil).Once()
	mockAPI.On("Snapshot", mock.Anything, "t2").Return(snap, nil).Once()
	mockNotifier.On("Notify", mock.Anything, snap, map[string]models.ChangeKind{
		"M1": models.ChangeUpdated,
		"M2": models.ChangeNew,
	}).Run(func(_ mock.Arguments) { cancel() }).Return(nil).Once()

	p := newFastPoller(mockAPI, mockNotifier)

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	mockAPI.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

// TestRun_PollFailureKeepsBaseline verifies a failed poll neither stops the
// loop nor corrupts the change-detection baseline.
func TestRun_PollFailureKeepsBaseline(t *testing.T) {
	mockAPI := new(mocks.APIClient)
	mockNotifier := new(mocks.Notifier)

	seedPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t1", Groups: map[string]string{"M1": "u1"}},
	}
	newPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t2", Groups: map[string]string{"M1": "u2"}},
	}
	snap := &models.Snapshot{UID: "t2", Date: fixedNow}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	mockAPI.On("Poll", mock.Anything).Return(seedPoll, nil).Once()
	mockAPI.On("Poll", mock.Anything).Return(nil, errors.New("upstream down")).Once()
	mockAPI.On("Poll", mock.Anything).Return(newPoll, nil).Once()
	mockAPI.On("Snapshot", mock.Anything, "t2").Return(snap, nil).Once()
	// The change detected against the pre-failure baseline proves prev
	// survived the failed tick.
	mockNotifier.On("Notify", mock.Anything, snap, map[string]models.ChangeKind{
		"M1": models.ChangeUpdated,
	}).Run(func(_ mock.Arguments) { cancel() }).Return(nil).Once()

	p := newFastPoller(mockAPI, mockNotifier)

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	mockAPI.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

// TestRun_SnapshotFailureSkipsHorizon verifies a failed snapshot fetch skips
// notification but still advances the baseline (at-most-once delivery).
func TestRun_SnapshotFailureSkipsHorizon(t *testing.T) {
	mockAPI := new(mocks.APIClient)
	mockNotifier := new(mocks.Notifier)

	seedPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t1", Groups: map[string]string{"M1": "u1"}},
	}
	newPoll := &models.Poll{
		NextUpdate: fixedNow.Add(-time.Minute),
		Today:      &models.ChangeSet{UID: "t2", Groups: map[string]string{"M1": "u2"}},
	}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	mockAPI.On("Poll", mock.Anything).Return(seedPoll, nil).Once()
	mockAPI.On("Poll", mock.Anything).Return(newPoll, nil).Once()
	mockAPI.On("Snapshot", mock.Anything, "t2").
		Run(func(_ mock.Arguments) { cancel() }).
		Return(nil, errors.New("fetch failed")).Once()

	p := newFastPoller(mockAPI, mockNotifier)

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, newPoll, p.prev, "baseline must advance on poll success")
	mockAPI.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

// TestRun_InitialPollFailureIsFatal verifies the fail-fast seed poll.
func TestRun_InitialPollFailureIsFatal(t *testing.T) {
	mockAPI := new(mocks.APIClient)
	mockAPI.On("Poll", mock.Anything).Return(nil, errors.New("upstream down")).Once()

	p := newFastPoller(mockAPI, new(mocks.Notifier))

	err := p.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial poll failed")
	mockAPI.AssertExpectations(t)
}

// newFastPoller builds a poller with timings shrunk so loop tests finish
// quickly, pinned to an afternoon clock to stay out of the night branch.
func newFastPoller(api *mocks.APIClient, ntf *mocks.Notifier) *Poller {
	p := NewPoller(discardLogger(), api, ntf, detector.NewDetector(nil))
	p.minWait = time.Millisecond
	p.backoff = time.Millisecond
	p.now = func() time.Time { return fixedNow }

	return p
}
