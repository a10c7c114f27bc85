package application

import (
	"fmt"

	"github.com/qoocca/parent-pay/internal/domain"
)

// User-facing strings shared by the presentation layer.
const (
	MsgPhoneRequired          = "Enter a phone number."
	MsgTokenRequired          = "No login token found. Please log in again."
	MsgLoginFailed            = "Login failed (check the number)."
	MsgServerConnectionFailed = "Could not reach the server."
	MsgBadServerResponse      = "Unexpected server response."
	MsgReceiptParseError      = "Something went wrong while processing the data."
	MsgAuthFailed             = "Authentication failed. Please log in again."
	MsgNothingToPay           = "Nothing to pay."
	MsgPaymentSuccess         = "Payment completed successfully."
)

// LoginFailureMessage maps a login error to what the user sees.
func LoginFailureMessage(err *domain.AppError) string {
	switch err.Kind {
	case domain.ErrorKindNetwork:
		return MsgServerConnectionFailed
	case domain.ErrorKindUnauthorized, domain.ErrorKindForbidden, domain.ErrorKindServer:
		return MsgLoginFailed
	case domain.ErrorKindParsing, domain.ErrorKindUnknown:
		return MsgBadServerResponse
	default:
		return MsgBadServerResponse
	}
}

// ReceiptListFailureMessage maps a receipt list error to what the user sees.
func ReceiptListFailureMessage(err *domain.AppError) string {
	switch err.Kind {
	case domain.ErrorKindNetwork:
		return MsgServerConnectionFailed
	case domain.ErrorKindParsing, domain.ErrorKindUnknown:
		return MsgReceiptParseError
	case domain.ErrorKindUnauthorized, domain.ErrorKindForbidden:
		return MsgAuthFailed
	case domain.ErrorKindServer:
		return fmt.Sprintf("Could not fetch the receipt list (status %d).", err.Code)
	default:
		return MsgReceiptParseError
	}
}

// PaymentOutcomeMessage distinguishes "reauthentication required" from
// "some items failed" from full success.
func PaymentOutcomeMessage(outcome PayOutcome) string {
	switch {
	case outcome.HasAuthFailure:
		return MsgAuthFailed
	case outcome.FailedCount > 0:
		return fmt.Sprintf("%d payment(s) failed. Please try again.", outcome.FailedCount)
	default:
		return MsgPaymentSuccess
	}
}
