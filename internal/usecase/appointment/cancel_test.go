package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/noursalon/salon-scheduler/internal/domain/booking"
	"github.com/noursalon/salon-scheduler/internal/httperr"
)

func TestCancelAppointment(t *testing.T) {
	repo := seedRepo(t)
	auditor := &recordingAuditor{}
	loc := jerusalem(t)
	create := NewCreateAppointment(repo, noopConfirmer{}, auditor, nil, loc)
	cancel := NewCancelAppointment(repo, auditor, nil, loc)

	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	ap, err := create.Execute(context.Background(), slotInput(start, start.Add(30*time.Minute)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	canceled, err := cancel.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != string(domain.StatusCanceled) {
		t.Fatalf("expected canceled, got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("cancellation must stamp canceled_at")
	}

	stored, _ := repo.GetAppointment(context.Background(), ap.ID)
	if stored.Status != string(domain.StatusCanceled) {
		t.Fatalf("cancellation not persisted")
	}
}

func TestCancelAppointment_Idempotent(t *testing.T) {
	repo := seedRepo(t)
	auditor := &recordingAuditor{}
	loc := jerusalem(t)
	create := NewCreateAppointment(repo, noopConfirmer{}, auditor, nil, loc)
	cancel := NewCancelAppointment(repo, auditor, nil, loc)

	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	ap, _ := create.Execute(context.Background(), slotInput(start, start.Add(30*time.Minute)))

	if _, err := cancel.Execute(context.Background(), ap.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	events := len(auditor.events)

	again, err := cancel.Execute(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("second cancel must be a no-op, got %v", err)
	}
	if again.Status != string(domain.StatusCanceled) {
		t.Fatalf("status must stay canceled")
	}
	if len(auditor.events) != events {
		t.Fatalf("repeat cancel must not emit another audit event")
	}
}

func TestCancelAppointment_NotFound(t *testing.T) {
	cancel := NewCancelAppointment(seedRepo(t), &recordingAuditor{}, nil, jerusalem(t))

	if _, err := cancel.Execute(context.Background(), "missing"); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCancelAppointment_FreesSlot(t *testing.T) {
	repo := seedRepo(t)
	auditor := &recordingAuditor{}
	loc := jerusalem(t)
	create := NewCreateAppointment(repo, noopConfirmer{}, auditor, nil, loc)
	cancel := NewCancelAppointment(repo, auditor, nil, loc)

	start := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	in := slotInput(start, start.Add(30*time.Minute))

	ap, err := create.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(context.Background(), in); !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected conflict before cancel, got %v", err)
	}

	if _, err := cancel.Execute(context.Background(), ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := create.Execute(context.Background(), in); err != nil {
		t.Fatalf("canceled slot must be rebookable: %v", err)
	}
}
