package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TranscriptUnavailable is the placeholder the platform proxy uses while a
// transcript is still being processed.
const TranscriptUnavailable = "Transcript not available yet"

// Speaker attributes a transcript turn
type Speaker string

const (
	SpeakerAgent Speaker = "agent"
	SpeakerUser  Speaker = "user"
)

// ParseSpeaker matches a role name case-insensitively
func ParseSpeaker(role string) (Speaker, bool) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case string(SpeakerAgent):
		return SpeakerAgent, true
	case string(SpeakerUser):
		return SpeakerUser, true
	}
	return "", false
}

// TranscriptTurn is one attributed utterance
type TranscriptTurn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Utterance is a pre-structured transcript element as delivered by the platform
type Utterance struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TranscriptKind tags the shape a transcript arrived in
type TranscriptKind int

const (
	TranscriptUnknown TranscriptKind = iota
	TranscriptRaw
	TranscriptStructured
	TranscriptPending
)

func (k TranscriptKind) String() string {
	switch k {
	case TranscriptRaw:
		return "raw"
	case TranscriptStructured:
		return "structured"
	case TranscriptPending:
		return "unavailable"
	}
	return "unknown"
}

// Transcript is a call transcript resolved at the platform boundary. Only
// the field matching Kind is meaningful.
type Transcript struct {
	Kind       TranscriptKind
	Raw        string
	Structured []Utterance
}

// RawTranscript wraps a flat speaker-labelled string. The processing
// placeholder and empty strings become an unavailable transcript.
func RawTranscript(s string) Transcript {
	if strings.TrimSpace(s) == "" || s == TranscriptUnavailable {
		return UnavailableTranscript()
	}
	return Transcript{Kind: TranscriptRaw, Raw: s}
}

// StructuredTranscript wraps an ordered list of role/content pairs
func StructuredTranscript(u []Utterance) Transcript {
	return Transcript{Kind: TranscriptStructured, Structured: u}
}

// UnavailableTranscript marks a transcript that is still being processed
func UnavailableTranscript() Transcript {
	return Transcript{Kind: TranscriptPending}
}

// Available is false while the platform is still processing the call
func (t Transcript) Available() bool {
	return t.Kind != TranscriptPending
}

// ResolveTranscript decodes a transcript field of unknown JSON shape. Strings
// become raw transcripts, arrays of role/content objects become structured
// ones, null or absent becomes unavailable and anything else is unknown.
func ResolveTranscript(raw json.RawMessage) Transcript {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return UnavailableTranscript()
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Transcript{}
		}
		return RawTranscript(s)
	case '[':
		var utterances []Utterance
		if err := json.Unmarshal(trimmed, &utterances); err != nil {
			return Transcript{}
		}
		return StructuredTranscript(utterances)
	}
	return Transcript{}
}
