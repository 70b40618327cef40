package main

import (
	"context"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/queue"
)

type countingRepo struct {
	mu sync.Mutex
	n  int
}

func (r *countingRepo) InsertAction(context.Context, *domain.EnrollmentAction) error {
	r.mu.Lock()
	r.n++
	r.mu.Unlock()
	return nil
}

func (r *countingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

func TestShutdown_PersistsActionsFromDrainingRequests(t *testing.T) {
	repo := &countingRepo{}
	auditCtx, stopAudit := context.WithCancel(context.Background())
	defer stopAudit()
	dispatcher := queue.NewAuditDispatcher(2, repo, zerolog.Nop())
	dispatcher.Start(auditCtx)

	entered := make(chan struct{})
	release := make(chan struct{})
	e := echo.New()
	e.HideBanner, e.HidePort = true, true
	e.POST("/enroll", func(c echo.Context) error {
		close(entered)
		<-release
		dispatcher.Record(domain.EnrollmentAction{EmployeeID: 4, Kind: domain.ActionEnroll})
		return c.NoContent(http.StatusNoContent)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	e.Listener = ln
	go func() { _ = e.Start("") }()

	reqDone := make(chan error, 1)
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/enroll", "application/json", nil)
		if err == nil {
			resp.Body.Close()
		}
		reqDone <- err
	}()
	<-entered

	stopped := make(chan struct{})
	go func() {
		shutdown(e, dispatcher, stopAudit, zerolog.Nop())
		close(stopped)
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not return")
	}
	if err := <-reqDone; err != nil {
		t.Fatalf("in-flight request: %v", err)
	}
	if got := repo.count(); got != 1 {
		t.Fatalf("expected 1 persisted action, got %d", got)
	}
}
