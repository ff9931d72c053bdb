package phonenumber

// SearchPhoneNumbersRequest searches owned numbers by area code
type SearchPhoneNumbersRequest struct {
	AreaCode string `json:"area_code" validate:"required,areacode"`
}

// PurchasePhoneNumberRequest buys a specific number or any number in an area
type PurchasePhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	AreaCode    string `json:"area_code,omitempty" validate:"omitempty,areacode"`
	AgentID     string `json:"agent_id,omitempty"`
}

// AssignPhoneNumberRequest points a number at an agent or webhook
type AssignPhoneNumberRequest struct {
	AgentID           string `json:"agent_id,omitempty"`
	InboundWebhookURL string `json:"inbound_webhook_url,omitempty" validate:"omitempty,url"`
}
