package api

import (
	"net/http"

	reqdto "gift-ledger/internal/handler/dto/request"
	resdto "gift-ledger/internal/handler/dto/response"
	"gift-ledger/internal/handler/httperr"
	"gift-ledger/internal/pkg/clock"
	"gift-ledger/internal/pkg/patch"
	"gift-ledger/internal/usecase/commands"
	"gift-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CertificateHandler struct {
	issuance commands.IssuanceCommands
	admin    commands.AdminCommands
	q        queries.CertificateQueries
	clock    clock.Clock
}

func NewCertificateHandler(issuance commands.IssuanceCommands, admin commands.AdminCommands, q queries.CertificateQueries, clk clock.Clock) *CertificateHandler {
	return &CertificateHandler{
		issuance: issuance,
		admin:    admin,
		q:        q,
		clock:    clk,
	}
}

// @Summary Issue certificate
// @Description Issue a new gift certificate. The code is generated unless a free one is supplied.
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueCertificateRequest true "Issue request"
// @Success 201 {object} resdto.IssueResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/certificates [post]
func (h *CertificateHandler) Issue(c *gin.Context) {
	var req reqdto.IssueCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.issuance.Issue(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueResult(result))
}

// @Summary Get certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id} [get]
func (h *CertificateHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateView(view))
}

// @Summary Look up balance
// @Description Public balance lookup by certificate code
// @Tags certificates
// @Produce json
// @Param code path string true "Certificate code"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/lookup/{code} [get]
func (h *CertificateHandler) Lookup(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateBalance(view))
}

// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CertificateListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/certificates [get]
func (h *CertificateHandler) List(c *gin.Context) {
	var query reqdto.ListCertificatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	cursor := &queries.Cursor{After: query.After}
	items, next, err := h.q.List(c.Request.Context(), queries.ListFilters{Status: query.Status}, cursor, patch.Coalesce(query.Limit, queries.DefaultListLimit))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res := resdto.CertificateListResponse{Items: resdto.FromCertificateList(items)}
	if next != nil {
		res.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Certificates due for delivery
// @Description Pending certificates whose delivery date has arrived
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param as_of query string false "Date (YYYY-MM-DD), defaults to today"
// @Param limit query int false "Max items"
// @Success 200 {array} resdto.CertificateResponse
// @Router /api/certificates/due-for-delivery [get]
func (h *CertificateHandler) DueForDelivery(c *gin.Context) {
	var query reqdto.DueForDeliveryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	asOf, err := query.AsOfDate(h.clock.Now())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	items, err := h.q.ListDueForDelivery(c.Request.Context(), asOf, patch.Coalesce(query.Limit, queries.DefaultListLimit))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateList(items))
}

// @Summary Certificate transactions
// @Description Ledger entries, most recent first
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id}/transactions [get]
func (h *CertificateHandler) Transactions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.q.ListTransactions(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionList(items))
}

// @Summary Reconcile certificate
// @Description Compares the stored balance with the original amount minus the ledger total
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} resdto.ReconciliationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id}/reconciliation [get]
func (h *CertificateHandler) Reconciliation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.Reconcile(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconciliationView(view))
}

// @Summary Update certificate metadata
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body reqdto.UpdateMetadataRequest true "Fields to change"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id} [patch]
func (h *CertificateHandler) UpdateMetadata(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	m, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.admin.UpdateMetadata(c.Request.Context(), id, m); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithCertificate(c, id)
}

// @Summary Update certificate status
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id}/status [put]
func (h *CertificateHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.admin.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithCertificate(c, id)
}

// @Summary Mark certificate delivered
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} resdto.CertificateResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/certificates/{id}/delivered [post]
func (h *CertificateHandler) MarkDelivered(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.MarkDelivered(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithCertificate(c, id)
}

// @Summary Delete certificate
// @Description Hard delete; the ledger entries go with it
// @Tags certificates
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/certificates/{id} [delete]
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CertificateHandler) respondWithCertificate(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCertificateView(view))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
