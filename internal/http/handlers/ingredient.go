package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
}

func NewIngredientHandler(ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

func (ih *IngredientHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		DefaultUnit string `json:"default_unit" binding:"omitempty,unitcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	ingredient, err := ih.ingredientService.Create(c.Request.Context(), req.Name, req.DefaultUnit)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"success": true, "ingredient": ingredient})
}

func (ih *IngredientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid ingredient id"))
		return
	}
	ingredient, err := ih.ingredientService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "ingredient": ingredient})
}

func (ih *IngredientHandler) List(c *gin.Context) {
	ingredients, err := ih.ingredientService.List(c.Request.Context())
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "ingredients": ingredients})
}
