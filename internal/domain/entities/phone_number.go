package entities

// PhoneNumber is a number owned on the platform
type PhoneNumber struct {
	PhoneNumber       string  `json:"phone_number"`
	PhoneNumberPretty string  `json:"phone_number_pretty,omitempty"`
	AreaCode          int     `json:"area_code,omitempty"`
	AgentID           *string `json:"inbound_agent_id,omitempty"`
	InboundWebhookURL *string `json:"inbound_webhook_url,omitempty"`
	Nickname          *string `json:"nickname,omitempty"`
	LastModification  int64   `json:"last_modification_timestamp,omitempty"`
}

// IsAssigned reports whether an agent answers inbound calls on the number
func (n *PhoneNumber) IsAssigned() bool {
	return n.AgentID != nil && *n.AgentID != ""
}

// PhoneNumberPurchase is the payload for buying a number
type PhoneNumberPurchase struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	AreaCode    int    `json:"area_code,omitempty"`
	AgentID     string `json:"inbound_agent_id,omitempty"`
}

// PhoneNumberPatch changes the agent or webhook of a number
type PhoneNumberPatch struct {
	AgentID           *string `json:"inbound_agent_id,omitempty"`
	InboundWebhookURL *string `json:"inbound_webhook_url,omitempty"`
}
