package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/services"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
)

// RecipeView flattens the stored jsonb lines into a decoded payload so
// clients never see the raw blob.
type RecipeView struct {
	*types.Recipe
	Ingredients []types.RecipeIngredient `json:"ingredients"`
}

type RecipeHandler struct {
	recipeService services.RecipeService
}

func NewRecipeHandler(recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

type recipeRequest struct {
	Name        string                   `json:"name"`
	Ingredients []types.RecipeIngredient `json:"ingredients" binding:"omitempty,dive"`
}

func (rh *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	recipe, err := rh.recipeService.Create(c.Request.Context(), req.Name, req.Ingredients)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := recipeView(recipe)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"success": true, "recipe": view})
}

func (rh *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid recipe id"))
		return
	}
	recipe, err := rh.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := recipeView(recipe)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "recipe": view})
}

func (rh *RecipeHandler) List(c *gin.Context) {
	recipes, err := rh.recipeService.List(c.Request.Context())
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	views := make([]*RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		view, err := recipeView(recipe)
		if err != nil {
			response.RespondMapped(c, err)
			return
		}
		views = append(views, view)
	}
	response.RespondOK(c, gin.H{"success": true, "recipes": views})
}

func (rh *RecipeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid recipe id"))
		return
	}
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	recipe, err := rh.recipeService.Update(c.Request.Context(), id, req.Name, req.Ingredients)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	view, err := recipeView(recipe)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "recipe": view})
}

func (rh *RecipeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid recipe id"))
		return
	}
	if err := rh.recipeService.Delete(c.Request.Context(), id); err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

func recipeView(recipe *types.Recipe) (*RecipeView, error) {
	lines, err := recipe.Ingredients()
	if err != nil {
		return nil, apperr.Persistence("decode recipe ingredients", err)
	}
	return &RecipeView{Recipe: recipe, Ingredients: lines}, nil
}
