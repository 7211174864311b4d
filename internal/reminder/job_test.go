package reminder_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra/internal/logger"
	"github.com/eventra/eventra/internal/mocks"
	"github.com/eventra/eventra/internal/notification"
	"github.com/eventra/eventra/internal/reminder"
	"github.com/eventra/eventra/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testJobMocks struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	mailer *mocks.MockMailer
	clock  *mocks.MockClock
	job    *reminder.Job
}

func setupTest(t *testing.T) *testJobMocks {
	ctrl := gomock.NewController(t)

	mockStore := mocks.NewMockStore(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	job := reminder.NewJob(reminder.Config{WorkerPoolSize: 2}, mockStore, mockMailer, mockClock)

	return &testJobMocks{
		ctrl:   ctrl,
		store:  mockStore,
		mailer: mockMailer,
		clock:  mockClock,
		job:    job,
	}
}

func tearDownTest(tm *testJobMocks) {
	tm.ctrl.Finish()
}

func TestRun(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	windowStart := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)

	event := schema.Event{
		ID:        "event-1",
		Title:     "Go Conference",
		EventDate: windowStart.Add(10 * time.Hour),
		Location:  "Lagos",
	}

	tm.store.EXPECT().
		ListEventsStartingBetween(ctx, windowStart, windowEnd).
		Return([]schema.Event{event}, nil)
	tm.store.EXPECT().
		ListTicketHolderIDs(ctx, "event-1").
		Return([]string{"alice", "bob"}, nil)
	tm.store.EXPECT().
		GetProfilesByIDs(ctx, []string{"alice", "bob"}).
		Return([]schema.Profile{
			{ID: "alice", Email: "alice@example.com", FullName: "Alice"},
			{ID: "bob", Email: "bob@example.com", FullName: "Bob"},
		}, nil)

	sentTo := make(chan string, 2)
	tm.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message notification.Message) error {
			sentTo <- message.To
			return nil
		}).
		Times(2)

	summary, err := tm.job.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.EventsProcessed)
	assert.EqualValues(t, 2, summary.EmailsSent)
	assert.EqualValues(t, 0, summary.EmailsFailed)

	close(sentTo)
	recipients := map[string]bool{}
	for to := range sentTo {
		recipients[to] = true
	}
	assert.True(t, recipients["alice@example.com"])
	assert.True(t, recipients["bob@example.com"])
}

func TestRun_CountsFailures(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		ListEventsStartingBetween(ctx, gomock.Any(), gomock.Any()).
		Return([]schema.Event{{ID: "event-1", Title: "Go Conference"}}, nil)
	tm.store.EXPECT().ListTicketHolderIDs(ctx, "event-1").Return([]string{"alice"}, nil)
	tm.store.EXPECT().
		GetProfilesByIDs(ctx, []string{"alice"}).
		Return([]schema.Profile{{ID: "alice", Email: "alice@example.com"}}, nil)

	tm.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))

	summary, err := tm.job.Run(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.EmailsSent)
	assert.EqualValues(t, 1, summary.EmailsFailed)
}

func TestRun_EmptyWindow(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC))
	tm.store.EXPECT().
		ListEventsStartingBetween(ctx, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	summary, err := tm.job.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.EventsProcessed)
	assert.EqualValues(t, 0, summary.EmailsSent)
}
