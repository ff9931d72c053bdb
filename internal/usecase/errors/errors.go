package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
)

// Call errors
var (
	ErrInvalidState   = errors.New("invalid state")
	ErrNoAgent        = fmt.Errorf("%w: no agent selected", ErrInvalidState)
	ErrCallInProgress = fmt.Errorf("%w: call already in progress", ErrInvalidState)
	ErrAlreadyEnded   = fmt.Errorf("%w: call already completed", ErrInvalidState)
	ErrNothingToEnd   = errors.New("no call to end")
	ErrEmptyHistory   = errors.New("call history is empty")
	ErrUnknownEvent   = errors.New("unknown call event")
)

// Phone number errors
var (
	ErrAreaCodeRequired       = fmt.Errorf("%w: area code is required", ErrInvalidInput)
	ErrNumberOrAreaRequired   = fmt.Errorf("%w: either phone number or area code is required", ErrInvalidInput)
	ErrAssignmentTargetNeeded = fmt.Errorf("%w: agent id or inbound webhook url is required", ErrInvalidInput)
)
