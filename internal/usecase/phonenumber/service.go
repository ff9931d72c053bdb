package phonenumber

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/voice-agent-dashboard/pkg/validator"
)

// Service defines the interface for phone number use case
type Service interface {
	List(ctx context.Context) ([]*entities.PhoneNumber, error)
	Search(ctx context.Context, areaCode string) ([]*entities.PhoneNumber, error)
	Purchase(ctx context.Context, input PurchaseInput) (*entities.PhoneNumber, error)
	Assign(ctx context.Context, number string, input AssignInput) (*entities.PhoneNumber, error)
	Release(ctx context.Context, number string) error
}

var _ Service = (*PhoneNumberService)(nil)

// PhoneNumberService manages numbers owned on the platform
type PhoneNumberService struct {
	client retell.Client
	logger *zap.Logger
}

// NewPhoneNumberService creates a new phone number service
func NewPhoneNumberService(client retell.Client, logger *zap.Logger) *PhoneNumberService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhoneNumberService{client: client, logger: logger}
}

// PurchaseInput buys either a specific number or any number in an area code
type PurchaseInput struct {
	PhoneNumber string
	AreaCode    string
	AgentID     string
}

// AssignInput points a number at an agent and/or an inbound webhook
type AssignInput struct {
	AgentID           string
	InboundWebhookURL string
}

// List returns all owned numbers
func (s *PhoneNumberService) List(ctx context.Context) ([]*entities.PhoneNumber, error) {
	numbers, err := s.client.ListPhoneNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phone numbers: %w", err)
	}
	return numbers, nil
}

// Search lists numbers in an area code
func (s *PhoneNumberService) Search(ctx context.Context, areaCode string) ([]*entities.PhoneNumber, error) {
	areaCode = strings.TrimSpace(areaCode)
	if areaCode == "" {
		return nil, usecaseErrors.ErrAreaCodeRequired
	}
	code, err := parseAreaCode(areaCode)
	if err != nil {
		return nil, err
	}

	numbers, err := s.client.SearchPhoneNumbers(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to search phone numbers in %s: %w", areaCode, err)
	}
	return numbers, nil
}

// Purchase buys a number. A specific number takes precedence over the area code.
func (s *PhoneNumberService) Purchase(ctx context.Context, input PurchaseInput) (*entities.PhoneNumber, error) {
	number := strings.TrimSpace(input.PhoneNumber)
	areaCode := strings.TrimSpace(input.AreaCode)
	if number == "" && areaCode == "" {
		return nil, usecaseErrors.ErrNumberOrAreaRequired
	}

	purchase := &entities.PhoneNumberPurchase{AgentID: strings.TrimSpace(input.AgentID)}
	if number != "" {
		purchase.PhoneNumber = number
	} else {
		code, err := parseAreaCode(areaCode)
		if err != nil {
			return nil, err
		}
		purchase.AreaCode = code
	}

	n, err := s.client.CreatePhoneNumber(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase phone number: %w", err)
	}
	s.logger.Info("phone_number.purchase.success", zap.String("phone_number", n.PhoneNumber))
	return n, nil
}

// Assign updates the agent and/or webhook of a number
func (s *PhoneNumberService) Assign(ctx context.Context, number string, input AssignInput) (*entities.PhoneNumber, error) {
	patch := &entities.PhoneNumberPatch{}
	if agentID := strings.TrimSpace(input.AgentID); agentID != "" {
		patch.AgentID = &agentID
	}
	if hook := strings.TrimSpace(input.InboundWebhookURL); hook != "" {
		patch.InboundWebhookURL = &hook
	}
	if patch.AgentID == nil && patch.InboundWebhookURL == nil {
		return nil, usecaseErrors.ErrAssignmentTargetNeeded
	}

	n, err := s.client.UpdatePhoneNumber(ctx, number, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update phone number %s: %w", number, err)
	}
	s.logger.Info("phone_number.assign.success",
		zap.String("phone_number", number),
		zap.String("agent_id", input.AgentID),
	)
	return n, nil
}

// Release gives a number back
func (s *PhoneNumberService) Release(ctx context.Context, number string) error {
	if err := s.client.DeletePhoneNumber(ctx, number); err != nil {
		return fmt.Errorf("failed to release phone number %s: %w", number, err)
	}
	s.logger.Info("phone_number.release.success", zap.String("phone_number", number))
	return nil
}

func parseAreaCode(s string) (int, error) {
	if !pkgvalidator.IsAreaCode(s) {
		return 0, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidAreaCode)
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidAreaCode)
	}
	return code, nil
}
