// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package supervisor

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	server := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}
}

func TestHTTPServiceListenError(t *testing.T) {
	server := &http.Server{Addr: "256.256.256.256:1", Handler: http.NewServeMux()}
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := svc.Serve(ctx); err == nil || errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want listen failure", err)
	}
}

func TestServiceNames(t *testing.T) {
	if got := (&HTTPService{}).String(); got != "http-server" {
		t.Errorf("HTTPService.String() = %q", got)
	}
	if got := (&IndexService{}).String(); got != "text-index" {
		t.Errorf("IndexService.String() = %q", got)
	}
}
