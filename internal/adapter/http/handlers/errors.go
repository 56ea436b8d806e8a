package handlers

import (
	"errors"
	"net/http"

	"paintshop_lots/internal/adapter/http/dto/request"
	"paintshop_lots/internal/adapter/http/middleware"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"
	"paintshop_lots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

	errInvalidTriState         = errors.New("status filter must be unanalysed, pending, ok or any")
	errInvalidObligationStatus = errors.New("status must be pending or settled")
)

// mapDomainError turns a usecase error into its HTTP representation.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainError("PERMISSION_DENIED", "Operation requires a privileged role", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrPartialMoveFailure):
		return pkg.NewDomainError("PARTIAL_MOVE_FAILURE", "Delivery was partially applied", err, http.StatusInternalServerError).WithHint("reconcile")
	case errors.Is(err, usecase.ErrBatchWriteFailure):
		return pkg.NewDomainError("BATCH_WRITE_FAILURE", "Paint order was not applied, reload the station and retry", err, http.StatusConflict).WithHint("refetch")
	case errors.Is(err, usecase.ErrStaleState):
		return pkg.NewDomainError("STALE_STATE", "The record changed since it was read", err, http.StatusConflict).WithHint("refetch")
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Transition not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotReady):
		return pkg.NewDomainError("NOT_READY", "Lot is not ready for delivery", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainError("ALREADY_SETTLED", "Obligation is already settled", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotVerified):
		return pkg.NewDomainError("PAYMENT_NOT_VERIFIED", "Payment could not be verified with the provider", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Lot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHistoryNotFound):
		return pkg.NewDomainErrorSimple("HISTORY_NOT_FOUND", "History entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrObligationNotFound):
		return pkg.NewDomainErrorSimple("OBLIGATION_NOT_FOUND", "Obligation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Financial record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPromptNotFound):
		return pkg.NewDomainErrorSimple("PROMPT_NOT_FOUND", "No active settlement prompt for this lot", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidLotID),
		errors.Is(err, usecase.ErrInvalidStation),
		errors.Is(err, usecase.ErrInvalidStatusField),
		errors.Is(err, usecase.ErrInvalidLotDetails),
		errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidWindow),
		errors.Is(err, usecase.ErrInvalidSource),
		errors.Is(err, request.ErrInvalidDate),
		errors.Is(err, request.ErrInvalidWindow):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("route", c.FullPath()).Str("code", appErr.Code).Msg("[http][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, err error) {
	appErr := pkg.NewDomainError(errInvalidPayload.Code, errInvalidPayload.Message, err, errInvalidPayload.HTTPStatus)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func actorRole(c *gin.Context) entities.Role {
	return middleware.RoleFrom(c)
}
