// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lexsight/internal/logger"
)

type fakePurger struct {
	calls atomic.Int32
	err   error
}

func (f *fakePurger) PurgeExpiredSessions(context.Context) (int64, error) {
	f.calls.Add(1)
	return 2, f.err
}

func TestNewSessionCleanupWorker_Disabled(t *testing.T) {
	tests := []struct {
		name     string
		purger   SessionPurger
		interval time.Duration
	}{
		{name: "zero interval", purger: &fakePurger{}},
		{name: "negative interval", purger: &fakePurger{}, interval: -time.Second},
		{name: "no purger", interval: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, NewSessionCleanupWorker(tt.purger, tt.interval, logger.Nop()))
		})
	}
}

func TestSessionCleanupWorker_SweepsAtStartAndOnTick(t *testing.T) {
	purger := &fakePurger{}
	w := NewSessionCleanupWorker(purger, 10*time.Millisecond, logger.Nop())
	require.NotNil(t, w)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	require.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestSessionCleanupWorker_KeepsRunningAfterError(t *testing.T) {
	purger := &fakePurger{err: errors.New("database is locked")}
	w := NewSessionCleanupWorker(purger, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestSessionCleanupWorker_CanceledBeforeStart(t *testing.T) {
	purger := &fakePurger{}
	w := NewSessionCleanupWorker(purger, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	assert.Zero(t, purger.calls.Load())
}
