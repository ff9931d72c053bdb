// Package transcript turns platform call transcripts into attributed turns.
package transcript

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
)

var (
	// speakerMarker finds the start of every labelled utterance
	speakerMarker = regexp.MustCompile(`(?i)agent:|user:`)
	// leadingMarker strips the label from a fragment that starts with one
	leadingMarker = regexp.MustCompile(`(?i)^(agent:|user:)`)
)

const (
	agentPrefix = "agent:"
	userPrefix  = "user:"
)

// Segment converts a transcript into ordered speaker turns. Unavailable and
// unknown transcripts yield no turns; callers check t.Available() to tell a
// pending transcript apart from an empty one.
func Segment(t entities.Transcript) []entities.TranscriptTurn {
	switch t.Kind {
	case entities.TranscriptRaw:
		return segmentRaw(t.Raw)
	case entities.TranscriptStructured:
		return segmentStructured(t.Structured)
	default:
		return []entities.TranscriptTurn{}
	}
}

// segmentStructured maps role/content pairs straight to turns. Elements with
// a role other than agent or user are dropped.
func segmentStructured(utterances []entities.Utterance) []entities.TranscriptTurn {
	turns := make([]entities.TranscriptTurn, 0, len(utterances))
	for _, u := range utterances {
		speaker, ok := entities.ParseSpeaker(u.Role)
		if !ok {
			continue
		}
		turns = append(turns, entities.TranscriptTurn{Speaker: speaker, Text: u.Content})
	}
	return turns
}

// segmentRaw splits a flat transcript before every speaker label. Fragments
// without a recognised label, such as a preamble, are dropped.
func segmentRaw(s string) []entities.TranscriptTurn {
	turns := []entities.TranscriptTurn{}
	for _, fragment := range splitFragments(s) {
		trimmed := strings.TrimSpace(fragment)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		var speaker entities.Speaker
		switch {
		case strings.HasPrefix(lower, agentPrefix):
			speaker = entities.SpeakerAgent
		case strings.HasPrefix(lower, userPrefix):
			speaker = entities.SpeakerUser
		default:
			continue
		}

		text := strings.TrimSpace(leadingMarker.ReplaceAllString(trimmed, ""))
		turns = append(turns, entities.TranscriptTurn{Speaker: speaker, Text: text})
	}
	return turns
}

// splitFragments cuts s at the start of each marker, keeping the marker
// attached to the fragment it introduces.
func splitFragments(s string) []string {
	locs := speakerMarker.FindAllStringIndex(s, -1)
	fragments := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			fragments = append(fragments, s[prev:loc[0]])
		}
		prev = loc[0]
	}
	if prev < len(s) {
		fragments = append(fragments, s[prev:])
	}
	return fragments
}

// FromTurns builds a structured transcript from turns, so that segmented
// output can be fed back through Segment unchanged.
func FromTurns(turns []entities.TranscriptTurn) entities.Transcript {
	utterances := make([]entities.Utterance, len(turns))
	for i, turn := range turns {
		utterances[i] = entities.Utterance{Role: string(turn.Speaker), Content: turn.Text}
	}
	return entities.StructuredTranscript(utterances)
}
