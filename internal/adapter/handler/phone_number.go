package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/phonenumber"
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/presenter"
	phoneUsecase "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/phonenumber"
)

// PhoneNumber handles phone number HTTP requests
type PhoneNumber struct {
	phoneService phoneUsecase.Service
	logger       *zap.Logger
}

// NewPhoneNumberHandler creates a new phone number handler
func NewPhoneNumberHandler(phoneService phoneUsecase.Service, logger *zap.Logger) *PhoneNumber {
	return &PhoneNumber{
		phoneService: phoneService,
		logger:       logger,
	}
}

// ListPhoneNumbers handles GET /phone-numbers
// @Summary      List phone numbers
// @Tags         PhoneNumbers
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=phonenumber.ListPhoneNumbersResponse}
// @Router       /phone-numbers [get]
func (h *PhoneNumber) ListPhoneNumbers(c echo.Context) error {
	numbers, err := h.phoneService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPhoneNumberListResponse(numbers))
}

// SearchPhoneNumbers handles POST /phone-numbers/search
// @Summary      Search phone numbers by area code
// @Tags         PhoneNumbers
// @Accept       json
// @Produce      json
// @Param        request  body      phonenumber.SearchPhoneNumbersRequest  true  "Area code"
// @Success      200      {object}  common.SuccessResponse{data=phonenumber.ListPhoneNumbersResponse}
// @Failure      400      {object}  common.ErrorResponse  "Area code missing or not 3 digits"
// @Router       /phone-numbers/search [post]
func (h *PhoneNumber) SearchPhoneNumbers(c echo.Context) error {
	var req phonenumber.SearchPhoneNumbersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	numbers, err := h.phoneService.Search(c.Request().Context(), req.AreaCode)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToPhoneNumberListResponse(numbers))
}

// PurchasePhoneNumber handles POST /phone-numbers
// @Summary      Purchase a phone number
// @Description  Buys a specific number, or any number in the area code
// @Tags         PhoneNumbers
// @Accept       json
// @Produce      json
// @Param        request  body      phonenumber.PurchasePhoneNumberRequest  true  "Number or area code"
// @Success      201      {object}  common.SuccessResponse{data=phonenumber.PhoneNumberResponse}
// @Failure      400      {object}  common.ErrorResponse  "Neither number nor area code given"
// @Router       /phone-numbers [post]
func (h *PhoneNumber) PurchasePhoneNumber(c echo.Context) error {
	var req phonenumber.PurchasePhoneNumberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.phoneService.Purchase(c.Request().Context(), phoneUsecase.PurchaseInput{
		PhoneNumber: req.PhoneNumber,
		AreaCode:    req.AreaCode,
		AgentID:     req.AgentID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, "Phone number purchased", presenter.ToPhoneNumberResponse(n))
}

// AssignPhoneNumber handles PATCH /phone-numbers/:number
// @Summary      Assign a phone number
// @Description  Points a number at an agent and/or an inbound webhook
// @Tags         PhoneNumbers
// @Accept       json
// @Produce      json
// @Param        number   path      string                                true  "Phone number in E.164"
// @Param        request  body      phonenumber.AssignPhoneNumberRequest  true  "Assignment"
// @Success      200      {object}  common.SuccessResponse{data=phonenumber.PhoneNumberResponse}
// @Failure      404      {object}  common.ErrorResponse  "Phone number not found"
// @Router       /phone-numbers/{number} [patch]
func (h *PhoneNumber) AssignPhoneNumber(c echo.Context) error {
	var req phonenumber.AssignPhoneNumberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.phoneService.Assign(c.Request().Context(), c.Param("number"), phoneUsecase.AssignInput{
		AgentID:           req.AgentID,
		InboundWebhookURL: req.InboundWebhookURL,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusOK, "Phone number updated", presenter.ToPhoneNumberResponse(n))
}

// ReleasePhoneNumber handles DELETE /phone-numbers/:number
// @Summary      Release a phone number
// @Tags         PhoneNumbers
// @Produce      json
// @Param        number  path      string  true  "Phone number in E.164"
// @Success      200     {object}  common.SuccessResponse
// @Failure      404     {object}  common.ErrorResponse  "Phone number not found"
// @Router       /phone-numbers/{number} [delete]
func (h *PhoneNumber) ReleasePhoneNumber(c echo.Context) error {
	if err := h.phoneService.Release(c.Request().Context(), c.Param("number")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusOK, "Phone number released", nil)
}
