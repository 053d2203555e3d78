package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/casherapp/casher_backend/internal/core/ports/services"
	"github.com/casherapp/casher_backend/internal/dto"
	"github.com/casherapp/casher_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenditureHandler handles HTTP requests for expenditures and the
// downloadable expenditure statement.
type expenditureHandler struct {
	expenditureService portssvc.ExpenditureSvcFacade
	statementService   portssvc.StatementSvcFacade
}

func newExpenditureHandler(es portssvc.ExpenditureSvcFacade, ss portssvc.StatementSvcFacade) *expenditureHandler {
	return &expenditureHandler{expenditureService: es, statementService: ss}
}

// registerExpenditureRoutes registers all expenditure-related routes.
func registerExpenditureRoutes(rg *gin.RouterGroup, es portssvc.ExpenditureSvcFacade, ss portssvc.StatementSvcFacade) {
	h := newExpenditureHandler(es, ss)

	expenditures := rg.Group("/expenditures")
	{
		expenditures.POST("", h.createExpenditure)
		expenditures.GET("", h.listExpenditures)
		expenditures.GET("/transactions", h.summarize)
		expenditures.GET("/statement", h.downloadStatement)
		expenditures.PUT("/:id", h.updateExpenditure)
		expenditures.DELETE("/:id", h.deleteExpenditure)
	}
}

func (h *expenditureHandler) createExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expenditure, err := h.expenditureService.CreateExpenditure(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Expenditure recorded", slog.String("expenditure_id", expenditure.ExpenditureID))
	c.JSON(http.StatusCreated, dto.ToExpenditureResponse(expenditure))
}

func (h *expenditureHandler) listExpenditures(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expenditures, err := h.expenditureService.ListExpenditures(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureListResponse(expenditures))
}

func (h *expenditureHandler) summarize(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.expenditureService.SummarizeExpenditures(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureSummaryResponse(summary))
}

func (h *expenditureHandler) downloadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	path, err := h.statementService.RenderExpenditureStatement(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Statement rendered", slog.String("path", path))
	c.FileAttachment(path, "statement.pdf")
}

func (h *expenditureHandler) updateExpenditure(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expenditure, err := h.expenditureService.UpdateExpenditure(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureResponse(expenditure))
}

func (h *expenditureHandler) deleteExpenditure(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.expenditureService.DeleteExpenditure(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
