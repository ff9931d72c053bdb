package call

import (
	"fmt"

	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
)

// EventKind names a lifecycle event reported by the browser call client
type EventKind string

const (
	EventStarted        EventKind = "started"
	EventEnded          EventKind = "ended"
	EventAgentSpeaking  EventKind = "agentSpeaking"
	EventAgentListening EventKind = "agentListening"
	EventError          EventKind = "error"
)

// Status labels
const (
	LabelIdle       = "Ready to call"
	LabelConnecting = "Connecting..."
	LabelConnected  = "Call connected!"
	LabelEnded      = "Call ended"
	LabelSpeaking   = "Agent speaking..."
	LabelListening  = "Listening..."
	LabelFailed     = "Failed to start call"
)

// Event is one lifecycle notification. Message is only read for EventError.
type Event struct {
	Kind    EventKind
	Message string
}

// Status is the session status shown to the operator
type Status struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// reduce computes the next status. The history store is not touched here;
// ending the record is an explicit EndCall.
func reduce(current Status, event Event) (Status, error) {
	switch event.Kind {
	case EventStarted:
		return Status{Label: LabelConnected, Active: true}, nil
	case EventEnded:
		return Status{Label: LabelEnded, Active: false}, nil
	case EventAgentSpeaking:
		return Status{Label: LabelSpeaking, Active: current.Active}, nil
	case EventAgentListening:
		return Status{Label: LabelListening, Active: current.Active}, nil
	case EventError:
		return Status{Label: "Error: " + event.Message, Active: false}, nil
	default:
		return current, fmt.Errorf("%w: %q", usecaseErrors.ErrUnknownEvent, event.Kind)
	}
}
