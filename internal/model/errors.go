package model

import (
	"errors"
	"fmt"
)

// ErrUserCancelled marks a native share dismissed by the user. It is an
// informational outcome, not a failure.
var ErrUserCancelled = errors.New("sharing cancelled by user")

// CaptureError represents rasterization failures
type CaptureError struct {
	Asset   string
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Asset != "" {
		return fmt.Sprintf("capture failed [%s]: %s", e.Asset, e.Message)
	}
	return fmt.Sprintf("capture failed: %s", e.Message)
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}

// NewCaptureError creates a new capture error
func NewCaptureError(asset, message string, cause error) *CaptureError {
	return &CaptureError{
		Asset:   asset,
		Message: message,
		Cause:   cause,
	}
}

// PackagingError represents artifact assembly failures
type PackagingError struct {
	Message string
	Cause   error
}

func (e *PackagingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("packaging failed: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("packaging failed: %s", e.Message)
}

func (e *PackagingError) Unwrap() error {
	return e.Cause
}

// NewPackagingError creates a new packaging error
func NewPackagingError(message string, cause error) *PackagingError {
	return &PackagingError{
		Message: message,
		Cause:   cause,
	}
}

// DeliveryError represents a platform save/share failure that is not a
// user cancellation.
type DeliveryError struct {
	Channel string
	Message string
	Cause   error
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("delivery failed [%s]: %s (%v)", e.Channel, e.Message, e.Cause)
	}
	return fmt.Sprintf("delivery failed [%s]: %s", e.Channel, e.Message)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// NewDeliveryError creates a new delivery error
func NewDeliveryError(channel, message string, cause error) *DeliveryError {
	return &DeliveryError{
		Channel: channel,
		Message: message,
		Cause:   cause,
	}
}
