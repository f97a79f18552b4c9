package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func TestLogUseCaseObserver_WritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "todo-add",
		Success: true,
		Fields:  map[string]any{"item_id": "pro-todo"},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "service_use_case", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "todo-add", line["use_case"])
	assert.Equal(t, "pro-todo", line["item_id"])
	assert.Equal(t, true, line["success"])
}

func TestZapUseCaseObserver_FailuresLogAtError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewZapUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import", Err: errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "import", entries[0].ContextMap()["use_case"])
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestNilObserversFallBackToNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, NewZapUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))
}

func TestServices_ReportUseCases(t *testing.T) {
	state, _ := newTestState(t, testutil.NewTestDocument())
	rec := &recordingObserver{}
	todos := NewTodoService(state, NewIDGenerator(testutil.FixedClock(testNow)), rec)
	ctx := context.Background()

	_, err := todos.Add(ctx, domain.ProTodoItemID, "MONDAY", "Buy milk")
	require.NoError(t, err)
	_, err = todos.Add(ctx, domain.ProTodoItemID, "NOWHERE", "Buy milk")
	require.ErrorIs(t, err, ErrSectionNotFound)

	assert.Equal(t, []string{"todo-add", "todo-add"}, rec.names())
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "pro-todo", rec.events[0].Fields["item_id"])
	assert.NotEmpty(t, rec.events[0].Fields["entry_id"])
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, ErrSectionNotFound)
}
