package presenter

import (
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/phonenumber"
	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

// ToPhoneNumberResponse converts a PhoneNumber entity
func ToPhoneNumberResponse(n *entities.PhoneNumber) *phonenumber.PhoneNumberResponse {
	if n == nil {
		return nil
	}
	return &phonenumber.PhoneNumberResponse{
		PhoneNumber:       n.PhoneNumber,
		PhoneNumberPretty: n.PhoneNumberPretty,
		AreaCode:          n.AreaCode,
		AgentID:           n.AgentID,
		InboundWebhookURL: n.InboundWebhookURL,
		Nickname:          n.Nickname,
		Assigned:          n.IsAssigned(),
	}
}

// ToPhoneNumberListResponse converts a list of numbers
func ToPhoneNumberListResponse(numbers []*entities.PhoneNumber) *phonenumber.ListPhoneNumbersResponse {
	out := make([]*phonenumber.PhoneNumberResponse, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, ToPhoneNumberResponse(n))
	}
	return &phonenumber.ListPhoneNumbersResponse{PhoneNumbers: out, Total: len(out)}
}
