package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
	"hoa-be-svc/pkg/utils"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// PaymentRequest represents the payment create/update payload
type PaymentRequest struct {
	Resident        uint      `json:"resident" binding:"required"`
	MethodOfPayment string    `json:"method_of_payment" binding:"required"`
	Amount          float64   `json:"amount" binding:"required"`
	PaidAt          time.Time `json:"paid_at" binding:"required"`
}

// PaymentResponse represents a payment on the wire
type PaymentResponse struct {
	ID              uint    `json:"id"`
	Resident        uint    `json:"resident"`
	MethodOfPayment string  `json:"method_of_payment"`
	Amount          float64 `json:"amount"`
	PaidAt          string  `json:"paid_at"`
}

func toPaymentResponse(payment *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID,
		Resident:        payment.ResidentID,
		MethodOfPayment: payment.MethodOfPayment,
		Amount:          payment.Amount,
		PaidAt:          payment.PaidAt.Format(time.RFC3339),
	}
}

// List handles GET /api/payments
// @Summary List the caller's payments
// @Tags payments
// @Produce json
// @Success 200 {object} utils.PaginatedResponse{data=[]PaymentResponse}
// @Security BearerAuth
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	page, perPage := utils.GetPagination(c)

	payments, total, err := h.paymentService.List(caller.ID, page, perPage)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to list payments")
		return
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toPaymentResponse(&payments[i]))
	}

	utils.PaginatedSuccessResponse(c, "Payments retrieved successfully", responses, page, perPage, total)
}

// Get handles GET /api/payments/:id
// @Summary Retrieve one of the caller's payments
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} utils.APIResponse{data=PaymentResponse}
// @Security BearerAuth
// @Router /api/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	payment, err := h.paymentService.Get(caller.ID, id)
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to get payment")
		return
	}

	utils.SuccessResponse(c, "Payment retrieved successfully", toPaymentResponse(payment))
}

// Create handles POST /api/payments
// @Summary Record a payment made by the caller
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment payload"
// @Success 201 {object} utils.APIResponse{data=PaymentResponse}
// @Security BearerAuth
// @Router /api/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	payment := &models.Payment{
		ResidentID:      req.Resident,
		MethodOfPayment: req.MethodOfPayment,
		Amount:          req.Amount,
		PaidAt:          req.PaidAt,
	}
	if err := h.paymentService.Create(caller.ID, payment); err != nil {
		handleServiceError(c, h.logger, err, "Failed to create payment")
		return
	}

	utils.CreatedResponse(c, "Payment recorded successfully", toPaymentResponse(payment))
}

// Update handles PUT/PATCH /api/payments/:id
// @Summary Update one of the caller's payments
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse{data=PaymentResponse}
// @Security BearerAuth
// @Router /api/payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	payment, err := h.paymentService.Update(caller.ID, id, &models.Payment{
		MethodOfPayment: req.MethodOfPayment,
		Amount:          req.Amount,
		PaidAt:          req.PaidAt,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, "Failed to update payment")
		return
	}

	utils.SuccessResponse(c, "Payment updated successfully", toPaymentResponse(payment))
}

// Delete handles DELETE /api/payments/:id
// @Summary Delete one of the caller's payments
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		utils.UnauthorizedResponse(c, "User not authenticated")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	if err := h.paymentService.Delete(caller.ID, id); err != nil {
		handleServiceError(c, h.logger, err, "Failed to delete payment")
		return
	}

	utils.SuccessResponse(c, "Payment deleted successfully", nil)
}
