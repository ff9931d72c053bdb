package phonenumber

// PhoneNumberResponse represents an owned number
type PhoneNumberResponse struct {
	PhoneNumber       string  `json:"phone_number"`
	PhoneNumberPretty string  `json:"phone_number_pretty,omitempty"`
	AreaCode          int     `json:"area_code,omitempty"`
	AgentID           *string `json:"agent_id,omitempty"`
	InboundWebhookURL *string `json:"inbound_webhook_url,omitempty"`
	Nickname          *string `json:"nickname,omitempty"`
	Assigned          bool    `json:"assigned"`
}

// ListPhoneNumbersResponse contains owned numbers
type ListPhoneNumbersResponse struct {
	PhoneNumbers []*PhoneNumberResponse `json:"phone_numbers"`
	Total        int                    `json:"total"`
}
