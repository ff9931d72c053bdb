package presenter

import (
	"fmt"

	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/call"
	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/callhistory"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/transcript"
)

// ToCallRecordResponse converts a history record
func ToCallRecordResponse(r entities.CallRecord) *call.CallRecordResponse {
	return &call.CallRecordResponse{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Display:   r.Timestamp.Format(callhistory.TimestampLayout),
		Status:    string(r.Status),
		AgentID:   r.AgentID,
		AgentName: r.AgentName,
		AgentIcon: r.AgentIcon,
	}
}

// ToCallHistoryResponse converts the history, keeping its order
func ToCallHistoryResponse(records []entities.CallRecord) *call.CallHistoryResponse {
	out := make([]*call.CallRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToCallRecordResponse(r))
	}
	return &call.CallHistoryResponse{Calls: out, Total: len(out)}
}

// ToCallDetailResponse converts platform call details and segments the
// transcript into speaker turns
func ToCallDetailResponse(d *entities.CallDetail) *call.CallDetailResponse {
	if d == nil {
		return nil
	}

	seconds := d.DurationSeconds()
	response := &call.CallDetailResponse{
		CallID:              d.CallID,
		AgentID:             d.AgentID,
		Status:              d.Status,
		DurationSeconds:     seconds,
		Duration:            FormatDuration(seconds),
		TranscriptAvailable: d.Transcript.Available(),
		Turns:               []*call.TranscriptTurnResponse{},
		RecordingURL:        d.RecordingURL,
		Analysis:            d.Analysis,
	}

	if !response.TranscriptAvailable {
		response.TranscriptMessage = entities.TranscriptUnavailable
		return response
	}
	for _, turn := range transcript.Segment(d.Transcript) {
		response.Turns = append(response.Turns, &call.TranscriptTurnResponse{
			Speaker: string(turn.Speaker),
			Text:    turn.Text,
		})
	}
	return response
}

// FormatDuration renders seconds as "Xm Ys", or "Ys" under a minute
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	mins, secs := seconds/60, seconds%60
	if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
