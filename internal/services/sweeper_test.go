package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rohits-web03/chainnotes/internal/logging"
	"github.com/stretchr/testify/assert"
)

type countingExpirer struct {
	calls atomic.Int64
	err   error
}

func (c *countingExpirer) ExpireOldDeleted(context.Context) (int64, error) {
	c.calls.Add(1)
	if c.err != nil {
		return 0, c.err
	}
	return 2, nil
}

func testLogger(buf *bytes.Buffer) logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(buf, nil)))
}

func TestSweeper_RunOnceLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	exp := &countingExpirer{err: errors.New("db down")}
	s := NewSweeper(exp, time.Hour, testLogger(&buf))

	assert.Zero(t, s.RunOnce(context.Background()))
	assert.Contains(t, buf.String(), "db down")
	assert.Contains(t, buf.String(), "component=sweeper")
}

func TestSweeper_RunSweepsAtStartAndOnTick(t *testing.T) {
	var buf bytes.Buffer
	exp := &countingExpirer{}
	s := NewSweeper(exp, 10*time.Millisecond, testLogger(&buf))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return exp.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
