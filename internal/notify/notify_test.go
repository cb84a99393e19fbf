package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/mock"
	"github.com/gentrackhq/gentrack/models"
)

func TestWebhookSender_PostsJSON(t *testing.T) {
	var received Reminder
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewWebhookSender(WebhookConfig{URL: srv.URL, Timeout: 5 * time.Second})

	err := sender.Send(context.Background(), Reminder{
		GeneratorID:       1,
		Name:              "barn backup",
		TotalHours:        310,
		HoursSinceService: 110,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), received.GeneratorID)
	assert.Equal(t, "barn backup", received.Name)
	assert.Equal(t, 110.0, received.HoursSinceService)
}

func TestWebhookSender_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewWebhookSender(WebhookConfig{URL: srv.URL})

	err := sender.Send(context.Background(), Reminder{GeneratorID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

// recordingSender captures reminders handed to it.
type recordingSender struct {
	mu        sync.Mutex
	reminders []Reminder
}

func (s *recordingSender) Send(_ context.Context, reminder Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, reminder)
	return nil
}

func (s *recordingSender) list() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reminder(nil), s.reminders...)
}

func TestReminderWorker_RemindsOnlyDueGenerators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanned := make(chan struct{})
	var once sync.Once

	generators := mock.NewMockGeneratorRepository(ctrl)
	generators.EXPECT().ListAllGenerators(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]models.Generator, error) {
			defer once.Do(func() { close(scanned) })
			return []models.Generator{
				{GeneratorID: 1, Name: "barn backup", TotalHours: 310, LastServiceHours: 200, ServiceIntervalHours: 100},
				{GeneratorID: 2, Name: "workshop", TotalHours: 20, ServiceIntervalHours: 100},
			}, nil
		},
	).MinTimes(1)

	sender := &recordingSender{}
	worker := NewReminderWorker(generators, sender, 10*time.Millisecond, logger.Nop())

	finished := make(chan struct{})
	go func() {
		worker.Run()
		close(finished)
	}()

	select {
	case <-scanned:
	case <-time.After(2 * time.Second):
		t.Fatal("scan never happened")
	}

	worker.Stop()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	reminders := sender.list()
	require.NotEmpty(t, reminders)
	for _, reminder := range reminders {
		assert.Equal(t, int64(1), reminder.GeneratorID, "only the overdue generator is reminded")
		assert.Equal(t, 110.0, reminder.HoursSinceService)
	}
}
