package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/call"
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/presenter"
	callUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/call"
	"github.com/johnquangdev/voice-agent-dashboard/internal/usecase/callhistory"
)

// Call handles call session HTTP requests
type Call struct {
	callService callUsecase.Service
	logger      *zap.Logger
	now         func() time.Time
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService callUsecase.Service, logger *zap.Logger) *Call {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Call{
		callService: callService,
		logger:      logger,
		now:         time.Now,
	}
}

// StartCall handles POST /calls
// @Summary      Start a web call
// @Description  Registers a browser call with the selected agent and records it in the call history
// @Tags         Calls
// @Accept       json
// @Produce      json
// @Param        request  body      call.StartCallRequest  true  "Agent to call"
// @Success      201      {object}  common.SuccessResponse{data=call.StartCallResponse}
// @Failure      409      {object}  common.ErrorResponse  "No agent selected or a call is already in progress"
// @Failure      502      {object}  common.ErrorResponse  "Platform rejected the request"
// @Router       /calls [post]
func (h *Call) StartCall(c echo.Context) error {
	var req call.StartCallRequest
	if err := bindRequest(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.callService.StartCall(c.Request().Context(), req.AgentID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, "Call started", &call.StartCallResponse{
		AccessToken: out.AccessToken,
		CallID:      out.CallID,
		AgentID:     out.AgentID,
		Record:      presenter.ToCallRecordResponse(out.Record),
	})
}

// EndCall handles POST /calls/end
// @Summary      End the active call
// @Tags         Calls
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=call.CallRecordResponse}
// @Failure      404  {object}  common.ErrorResponse  "No call to end"
// @Failure      409  {object}  common.ErrorResponse  "Most recent call already completed"
// @Router       /calls/end [post]
func (h *Call) EndCall(c echo.Context) error {
	record, err := h.callService.EndCall(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusOK, "Call ended", presenter.ToCallRecordResponse(record))
}

// HandleEvent handles POST /calls/events
// @Summary      Report a call lifecycle event
// @Description  Updates the status label from a browser call client event
// @Tags         Calls
// @Accept       json
// @Produce      json
// @Param        request  body      call.CallEventRequest  true  "Lifecycle event"
// @Success      200      {object}  common.SuccessResponse{data=call.CallStatusResponse}
// @Failure      400      {object}  common.ErrorResponse  "Unknown event"
// @Router       /calls/events [post]
func (h *Call) HandleEvent(c echo.Context) error {
	var req call.CallEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	status, err := h.callService.HandleEvent(callUsecase.Event{
		Kind:    callUsecase.EventKind(req.Event),
		Message: req.Message,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &call.CallStatusResponse{Label: status.Label, Active: status.Active})
}

// GetStatus handles GET /calls/status
// @Summary      Current call status
// @Tags         Calls
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=call.CallStatusResponse}
// @Router       /calls/status [get]
func (h *Call) GetStatus(c echo.Context) error {
	status := h.callService.Status()
	return HandleSuccess(h.logger, c, &call.CallStatusResponse{Label: status.Label, Active: status.Active})
}

// ListHistory handles GET /calls/history
// @Summary      Call history
// @Description  Lists calls placed from the dashboard, most recent first
// @Tags         Calls
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=call.CallHistoryResponse}
// @Router       /calls/history [get]
func (h *Call) ListHistory(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToCallHistoryResponse(h.callService.History()))
}

// ExportHistory handles GET /calls/history/export
// @Summary      Export call history
// @Description  Downloads the call history as CSV
// @Tags         Calls
// @Produce      text/csv
// @Success      200  {string}  string  "CSV file"
// @Failure      409  {object}  common.ErrorResponse  "No calls to export"
// @Router       /calls/history/export [get]
func (h *Call) ExportHistory(c echo.Context) error {
	csv, err := h.callService.ExportCSV()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	filename := callhistory.ExportFilename(h.now())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	h.logger.Info("call.history.exported", zap.String("filename", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// GetCall handles GET /calls/:id
// @Summary      Call details
// @Description  Waits briefly for the platform to process the transcript, then returns the call with its transcript split into turns
// @Tags         Calls
// @Produce      json
// @Param        id   path      string  true  "Call ID"
// @Success      200  {object}  common.SuccessResponse{data=call.CallDetailResponse}
// @Failure      404  {object}  common.ErrorResponse  "Call not found"
// @Router       /calls/{id} [get]
func (h *Call) GetCall(c echo.Context) error {
	detail, err := h.callService.FetchDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToCallDetailResponse(detail))
}
