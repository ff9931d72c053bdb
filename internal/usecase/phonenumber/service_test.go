package phonenumber

import (
	"context"
	"errors"
	"testing"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
)

func newService() *PhoneNumberService {
	return NewPhoneNumberService(retell.NewMockClient(), nil)
}

func TestPurchase_ByAreaCode(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	n, err := svc.Purchase(ctx, PurchaseInput{AreaCode: "212", AgentID: retell.DemoAgentID})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if n.AreaCode != 212 || !n.IsAssigned() {
		t.Fatalf("unexpected number %+v", n)
	}

	found, err := svc.Search(ctx, "212")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 || found[0].PhoneNumber != n.PhoneNumber {
		t.Fatalf("unexpected search result %+v", found)
	}
}

func TestPurchase_SpecificNumberWins(t *testing.T) {
	svc := newService()
	n, err := svc.Purchase(context.Background(), PurchaseInput{PhoneNumber: "+14155550123", AreaCode: "212"})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if n.PhoneNumber != "+14155550123" || n.AreaCode != 415 {
		t.Fatalf("unexpected number %+v", n)
	}
}

func TestPurchase_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, err := svc.Purchase(ctx, PurchaseInput{}); !errors.Is(err, usecaseErrors.ErrNumberOrAreaRequired) {
		t.Fatalf("expected ErrNumberOrAreaRequired, got %v", err)
	}
	_, err := svc.Purchase(ctx, PurchaseInput{AreaCode: "41"})
	if !errors.Is(err, usecaseErrors.ErrInvalidInput) || !errors.Is(err, entities.ErrInvalidAreaCode) {
		t.Fatalf("expected invalid area code, got %v", err)
	}
}

func TestSearch_RequiresAreaCode(t *testing.T) {
	if _, err := newService().Search(context.Background(), " "); !errors.Is(err, usecaseErrors.ErrAreaCodeRequired) {
		t.Fatalf("expected ErrAreaCodeRequired, got %v", err)
	}
}

func TestAssign(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	n, err := svc.Purchase(ctx, PurchaseInput{AreaCode: "310"})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if n.IsAssigned() {
		t.Fatalf("new number should be unassigned")
	}

	if _, err := svc.Assign(ctx, n.PhoneNumber, AssignInput{}); !errors.Is(err, usecaseErrors.ErrAssignmentTargetNeeded) {
		t.Fatalf("expected ErrAssignmentTargetNeeded, got %v", err)
	}

	updated, err := svc.Assign(ctx, n.PhoneNumber, AssignInput{AgentID: retell.DemoAgentID})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !updated.IsAssigned() || *updated.AgentID != retell.DemoAgentID {
		t.Fatalf("number not assigned: %+v", updated)
	}
}

func TestRelease(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	n, _ := svc.Purchase(ctx, PurchaseInput{AreaCode: "617"})
	if err := svc.Release(ctx, n.PhoneNumber); err != nil {
		t.Fatalf("Release: %v", err)
	}
	numbers, _ := svc.List(ctx)
	if len(numbers) != 0 {
		t.Fatalf("expected no numbers after release, got %d", len(numbers))
	}
	if err := svc.Release(ctx, n.PhoneNumber); !retell.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
