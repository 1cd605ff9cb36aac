package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

type StockHandler struct {
	stockService services.StockService
}

func NewStockHandler(stockService services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (sh *StockHandler) Upsert(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("ingredientId"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid ingredient id"))
		return
	}
	var req struct {
		Quantity decimal.Decimal `json:"quantity"`
		Unit     string          `json:"unit" binding:"omitempty,unitcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	view, err := sh.stockService.Upsert(c.Request.Context(), ingredientID, req.Quantity, req.Unit)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "stock": view})
}

func (sh *StockHandler) List(c *gin.Context) {
	views, err := sh.stockService.List(c.Request.Context())
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "stock": views})
}
