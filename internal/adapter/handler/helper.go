package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voice-agent-dashboard/errors"
	"github.com/johnquangdev/voice-agent-dashboard/internal/adapter/dto/common"
	"github.com/johnquangdev/voice-agent-dashboard/internal/domain/entities"
	"github.com/johnquangdev/voice-agent-dashboard/internal/infrastructure/external/retell"
	usecaseErrors "github.com/johnquangdev/voice-agent-dashboard/internal/usecase/errors"
)

// getRequestID reads the id set by the request id middleware, falling back
// to the incoming header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleSuccessWithStatus(logger, c, http.StatusOK, "success", data)
}

// HandleSuccessWithStatus is HandleSuccess with a custom status and message
func HandleSuccessWithStatus(logger *zap.Logger, c echo.Context, status int, message string, data interface{}) error {
	resp := common.SuccessResponse{
		Success: true,
		Code:    errors.ErrorCode_HTTP_OK,
		Message: message,
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase and platform errors onto API errors
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var apiErr *retell.APIError
	switch {
	case stdErrors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusNotFound {
			e := errors.ErrNotFound("resource")
			e.Message = apiErr.Message
			e.Raw = err
			return e
		}
		return errors.ErrVendorRejected(apiErr.Message, err).
			WithDetail("vendor_status", strconv.Itoa(apiErr.StatusCode))
	case stdErrors.Is(err, retell.ErrTransport):
		return errors.ErrVendorUnreachable(err)

	case stdErrors.Is(err, usecaseErrors.ErrCallInProgress):
		return errors.ErrCallInProgress(err)
	case stdErrors.Is(err, usecaseErrors.ErrNoAgent):
		return errors.ErrNoAgentSelected()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidState):
		return errors.ErrInvalidState(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrNothingToEnd):
		return errors.ErrNoActiveCall()
	case stdErrors.Is(err, usecaseErrors.ErrEmptyHistory):
		return errors.ErrEmptyHistory()
	case stdErrors.Is(err, usecaseErrors.ErrUnknownEvent):
		return errors.ErrUnknownEvent(err)
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("call")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput),
		stdErrors.Is(err, entities.ErrInvalidAgent),
		stdErrors.Is(err, entities.ErrInvalidAreaCode):
		return errors.ErrInvalidArgument(err.Error())
	}

	return errors.ErrInternal(err)
}

// bindRequest binds the request body
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	return nil
}

// bindAndValidate binds the request body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := bindRequest(c, req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		e := errors.ErrInvalidArgument("validation failed")
		e.Raw = err
		return e
	}
	return nil
}
