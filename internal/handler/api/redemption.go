package api

import (
	"log/slog"
	"net/http"

	reqdto "gift-ledger/internal/handler/dto/request"
	resdto "gift-ledger/internal/handler/dto/response"
	"gift-ledger/internal/handler/httperr"
	"gift-ledger/internal/handler/middleware"
	"gift-ledger/internal/pkg/config"
	"gift-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	form config.FormConfig
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, cfg config.Config) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, form: cfg.Form}
}

// @Summary Redeem certificate
// @Description Apply up to the requested amount. Re-sending the same submission reference returns the original result.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Param X-Submission-Ref header string false "Submission reference for deduplication"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/redemptions [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), req.ToCommand(c.GetHeader(middleware.SubmissionRefHeader)))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

// @Summary Form submission webhook
// @Description Maps a form-builder submission onto a redemption. Submissions without a certificate code are acknowledged and ignored.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FormSubmissionRequest true "Form submission"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/webhooks/form-submissions [post]
func (h *RedemptionHandler) FormSubmission(c *gin.Context) {
	var req reqdto.FormSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, ok := req.ToCommand(h.form)
	if !ok {
		slog.Debug("form submission without certificate code", "form_id", req.FormID, "submission_id", req.SubmissionID)
		c.JSON(http.StatusOK, resdto.SkippedResponse{Status: "skipped"})
		return
	}
	result, err := h.cmds.Redeem(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}
