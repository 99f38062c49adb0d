package api

import (
	"net/http"

	"gift-ledger/internal/handler/dto/request"
	"gift-ledger/internal/handler/httperr"
	"gift-ledger/internal/infra"
	"gift-ledger/internal/pkg/errs"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the more specific marks come first.
var errorMappings = []errorMapping{
	{commands.ErrInvalidCodeFormat, http.StatusBadRequest, "Invalid certificate code format"},
	{queries.ErrInvalidCode, http.StatusBadRequest, "Invalid certificate code format"},
	{commands.ErrDuplicateCode, http.StatusBadRequest, "Certificate code already exists"},
	{commands.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{request.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},
	{request.ErrDesignIDTooLong, http.StatusBadRequest, "Invalid request"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidStatusFilter, http.StatusBadRequest, "Invalid status filter"},
	{commands.ErrNotFound, http.StatusNotFound, "Certificate not found"},
	{queries.ErrCertificateNotFound, http.StatusNotFound, "Certificate not found"},
	{commands.ErrInactive, http.StatusUnprocessableEntity, "Certificate is not active"},
	{commands.ErrZeroBalance, http.StatusUnprocessableEntity, "Certificate has no remaining balance"},
	{commands.ErrFormNotAllowed, http.StatusUnprocessableEntity, "This form cannot redeem gift certificates"},
	{commands.ErrInvalidTransition, http.StatusUnprocessableEntity, "Certificate is not pending delivery"},
	{commands.ErrConflict, http.StatusConflict, "Certificate was modified concurrently, please retry"},
	{commands.ErrStorage, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.status == http.StatusBadRequest {
				detail = errs.Cause(err).Error()
			}
			httperr.AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	if infra.IsKind(err, infra.KindDBFailure) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
