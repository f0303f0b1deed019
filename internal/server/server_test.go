// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHTTPServer simulates http.Server lifecycle behavior.
type fakeHTTPServer struct {
	serveErr    error
	blockServe  chan struct{}
	shutdownErr error
	shutdowns   atomic.Int32
}

func (f *fakeHTTPServer) ListenAndServe() error {
	if f.blockServe != nil {
		<-f.blockServe
	}
	return f.serveErr
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	if f.blockServe != nil {
		close(f.blockServe)
	}
	return f.shutdownErr
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	fake := &fakeHTTPServer{blockServe: make(chan struct{})}
	svc := NewHTTPService(fake, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
	assert.Equal(t, int32(1), fake.shutdowns.Load())
}

func TestHTTPServiceListenFailure(t *testing.T) {
	fake := &fakeHTTPServer{serveErr: errors.New("bind: address already in use")}
	svc := NewHTTPService(fake, time.Second)

	err := svc.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server failed")
}

func TestHTTPServiceShutdownFailure(t *testing.T) {
	fake := &fakeHTTPServer{
		blockServe:  make(chan struct{}),
		shutdownErr: errors.New("connections still active"),
	}
	svc := NewHTTPService(fake, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shutdown failed")
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
}

type countingRebuilder struct {
	rebuilds atomic.Int32
}

func (c *countingRebuilder) Rebuild() {
	c.rebuilds.Add(1)
}

func TestRefreshServiceTicks(t *testing.T) {
	rb := &countingRebuilder{}
	svc := NewRefreshService(rb, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, rb.rebuilds.Load(), int32(3))
}

func TestRefreshServiceDisabled(t *testing.T) {
	rb := &countingRebuilder{}
	svc := NewRefreshService(rb, 0, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(0), rb.rebuilds.Load())
}

func TestTreeRunsServices(t *testing.T) {
	tree := NewTree(DefaultTreeConfig())

	rb := &countingRebuilder{}
	tree.Add(NewRefreshService(rb, 10*time.Millisecond, zerolog.Nop()))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := tree.Serve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, rb.rebuilds.Load(), int32(1))
}
