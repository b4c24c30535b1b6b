package controllers

import (
	"errors"
	"strconv"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/shopspring/decimal"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Catálogo: lectura pública, edición solo admin (editor de carta del POS)
type CatalogController struct {
	MenuRepo     *repository.MenuRepository
	CategoryRepo *repository.CategoryRepository
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{
		MenuRepo:     repository.NewMenuRepository(db),
		CategoryRepo: repository.NewCategoryRepository(db),
	}
}

// GET /menu
func (h *CatalogController) ListMenu(c *gin.Context) {
	items, err := h.MenuRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /categories
func (h *CatalogController) ListCategories(c *gin.Context) {
	cats, err := h.CategoryRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

type variantIn struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

type menuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Image       string          `json:"image"`
	Note        string          `json:"note"`
	IsPopular   bool            `json:"isPopular"`
	IsCombo     bool            `json:"isCombo"`
	ComboItems  []string        `json:"comboItems"`
	Tags        []string        `json:"tags"`
	Variants    []variantIn     `json:"variants"`
}

func (in *menuItemIn) toEntity() *entity.MenuItem {
	m := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Note:        in.Note,
		IsPopular:   in.IsPopular,
		IsCombo:     in.IsCombo,
		ComboItems:  in.ComboItems,
		Tags:        in.Tags,
	}
	for _, v := range in.Variants {
		m.Variants = append(m.Variants, entity.ItemVariant{Name: v.Name, Price: v.Price})
	}
	return m
}

// POST /admin/menu
func (h *CatalogController) CreateMenuItem(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := req.toEntity()
	if err := h.MenuRepo.Create(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menu/:id: reemplaza el plato completo (variantes incluidas)
func (h *CatalogController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := h.MenuRepo.Get(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	m := req.toEntity()
	m.ID = uint(id)
	if err := h.MenuRepo.Update(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menu/:id
func (h *CatalogController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.MenuRepo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /admin/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := &entity.Category{Name: req.Name, SortOrder: req.SortOrder}
	if err := h.CategoryRepo.Create(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /admin/categories/:id: no borra los platos de la categoría
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.CategoryRepo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
