package handlers

import (
	"fmt"
	"strconv"

	"recipe-share/config"
	"recipe-share/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	db  *gorm.DB
	cfg config.Config
}

func NewReviewHandler(db *gorm.DB, cfg config.Config) *ReviewHandler {
	return &ReviewHandler{db: db, cfg: cfg}
}

type reviewForm struct {
	Rating  int    `form:"rating" binding:"required,min=1,max=5"`
	Comment string `form:"comment"`
}

// Create inserts a review for the recipe in the path. The acting user
// is the configured fallback actor; there is no session identity. An
// out-of-range or unparseable rating persists nothing and redirects
// back to the detail page with an error flash.
func (h *ReviewHandler) Create(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	detailPath := fmt.Sprintf("/recipe/%d", recipeID)

	var form reviewForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, detailPath, flashError, "Please provide a valid rating (1-5)")
		return
	}

	// The recipe's existence is not checked before the insert; the
	// store does not enforce the foreign key either.
	review := models.Review{
		RecipeID: uint(recipeID),
		UserID:   h.cfg.FallbackUserID,
		Rating:   form.Rating,
		Comment:  form.Comment,
	}
	if err := h.db.Create(&review).Error; err != nil {
		serverError(c)
		return
	}

	redirectWithFlash(c, detailPath, flashSuccess, "Review added successfully!")
}
