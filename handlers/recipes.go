package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"recipe-share/config"
	"recipe-share/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeHandler struct {
	db  *gorm.DB
	cfg config.Config
}

func NewRecipeHandler(db *gorm.DB, cfg config.Config) *RecipeHandler {
	return &RecipeHandler{db: db, cfg: cfg}
}

// RecipeCard is the listing row shape handed to the templates: one
// recipe left-joined to at most one image. AvgRating, ReviewCount and
// Tags are fixed placeholders, not computed aggregates.
type RecipeCard struct {
	ID              uint
	Name            string
	Instructions    string
	PrepTimeMinutes *int
	CostEstimate    *float64
	CreatedAt       time.Time
	ImageURL        *string
	ImageAlt        *string
	AvgRating       float64
	ReviewCount     int
	Tags            string
}

func (h *RecipeHandler) listRecipes(search string) ([]RecipeCard, error) {
	q := h.db.Model(&models.Recipe{}).
		Select(`recipes.id, recipes.name, recipes.instructions, recipes.prep_time_minutes,
			recipes.cost_estimate, recipes.created_at,
			images.file_path AS image_url, images.alt_text AS image_alt,
			4.5 AS avg_rating, 0 AS review_count, '' AS tags`).
		Joins("LEFT JOIN images ON images.recipe_id = recipes.id").
		Order("recipes.name")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("recipes.name LIKE ? OR recipes.instructions LIKE ?", like, like)
	}

	var cards []RecipeCard
	if err := q.Scan(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (h *RecipeHandler) listUsers() ([]models.User, error) {
	var users []models.User
	err := h.db.Order("name").Find(&users).Error
	return users, err
}

// Index shows every recipe ordered by name.
func (h *RecipeHandler) Index(c *gin.Context) {
	recipes, err := h.listRecipes("")
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Recipes": recipes,
		"Flash":   currentFlash(c),
	})
}

// Filter shows the listing narrowed by an optional free-text search
// over name and instructions. The tag parameter is echoed back into the
// page but not applied to the query; the selector is populated from
// dietary_tags regardless of results.
func (h *RecipeHandler) Filter(c *gin.Context) {
	search := c.Query("search")
	tag := c.Query("tag")

	recipes, err := h.listRecipes(search)
	if err != nil {
		serverError(c)
		return
	}

	var tags []string
	if err := h.db.Model(&models.DietaryTag{}).Distinct().Order("tag_name").Pluck("tag_name", &tags).Error; err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "filter_recipes.html", gin.H{
		"Recipes": recipes,
		"Search":  search,
		"Tag":     tag,
		"AllTags": tags,
		"Flash":   currentFlash(c),
	})
}

// Detail shows one recipe with its author, images, reviews (newest
// first) and ingredients. An unknown id redirects to the listing with
// an error flash instead of rendering.
func (h *RecipeHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	var recipe models.Recipe
	err = h.db.
		Preload("Author").
		Preload("Images").
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("reviews.created_at DESC, reviews.id DESC")
		}).
		Preload("Reviews.User").
		First(&recipe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		redirectWithFlash(c, "/", flashError, "Recipe not found")
		return
	}
	if err != nil {
		serverError(c)
		return
	}

	var ingredients []models.RecipeIngredient
	if err := h.db.Preload("Ingredient").Where("recipe_id = ?", recipe.ID).Find(&ingredients).Error; err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "recipe_detail.html", gin.H{
		"Recipe":      recipe,
		"Ingredients": ingredients,
		"Flash":       currentFlash(c),
	})
}

// ShowAddForm renders the creation form with the selectable user list.
func (h *RecipeHandler) ShowAddForm(c *gin.Context) {
	users, err := h.listUsers()
	if err != nil {
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "add_recipe.html", gin.H{
		"Users":        users,
		"Error":        "",
		"Name":         "",
		"Instructions": "",
		"PrepTime":     "",
		"CostEstimate": "",
	})
}

// Create inserts a new recipe. Name and instructions are required; a
// missing author falls back to the configured default actor. Validation
// failure re-renders the form with the user list reloaded and nothing
// persisted.
func (h *RecipeHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	instructions := c.PostForm("instructions")

	if name == "" || instructions == "" {
		users, err := h.listUsers()
		if err != nil {
			serverError(c)
			return
		}
		c.HTML(http.StatusOK, "add_recipe.html", gin.H{
			"Users":        users,
			"Error":        "Name and instructions are required",
			"Name":         name,
			"Instructions": instructions,
			"PrepTime":     c.PostForm("prep_time"),
			"CostEstimate": c.PostForm("cost_estimate"),
		})
		return
	}

	authorID := parseUintField(c.PostForm("author_id"))
	if authorID == nil {
		fallback := h.cfg.FallbackUserID
		authorID = &fallback
	}

	recipe := models.Recipe{
		Name:            name,
		Instructions:    instructions,
		PrepTimeMinutes: parseIntField(c.PostForm("prep_time")),
		CostEstimate:    parseFloatField(c.PostForm("cost_estimate")),
		AuthorID:        authorID,
	}
	if err := h.db.Create(&recipe).Error; err != nil {
		serverError(c)
		return
	}

	redirectWithFlash(c, fmt.Sprintf("/recipe/%d", recipe.ID), flashSuccess, "Recipe added successfully!")
}

// Optional numeric form fields arrive as empty strings when blank;
// anything unparseable is treated as absent.
func parseIntField(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatField(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseUintField(s string) *uint {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}
