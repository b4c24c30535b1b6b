package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luisgarciam27/demo-churre/controllers"
	"github.com/luisgarciam27/demo-churre/entity"
)

func setupCatalogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{}, &entity.ItemVariant{}, &entity.AppConfig{},
	); err != nil {
		t.Fatalf("failed to auto-migrate: %v", err)
	}

	catalogCtrl := controllers.NewCatalogController(db)
	configCtrl := controllers.NewConfigController(db, "51936494711")

	r := gin.New()
	r.GET("/menu", catalogCtrl.ListMenu)
	r.GET("/categories", catalogCtrl.ListCategories)
	r.GET("/config", configCtrl.Get)
	// sin middleware de auth: aquí se prueba el catálogo, no el login
	r.POST("/admin/menu", catalogCtrl.CreateMenuItem)
	r.POST("/admin/categories", catalogCtrl.CreateCategory)
	r.DELETE("/admin/categories/:id", catalogCtrl.DeleteCategory)

	return r, db
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// recargar dos veces sin escrituras en medio devuelve exactamente lo mismo
func TestReloadIsIdempotent(t *testing.T) {
	r, db := setupCatalogRouter(t)

	db.Create(&entity.Category{Name: "SANGUCHES", SortOrder: 1})
	db.Create(&entity.MenuItem{
		Name: "Pavo al Horno", Price: decimal.NewFromInt(15), Category: "SANGUCHES",
		Tags: []string{"desayuno"},
		Variants: []entity.ItemVariant{{Name: "Doble", Price: decimal.NewFromInt(25)}},
	})

	for _, path := range []string{"/menu", "/categories", "/config"} {
		first := doJSON(r, http.MethodGet, path, nil)
		second := doJSON(r, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestConfigFallsBackToDefaults(t *testing.T) {
	r, _ := setupCatalogRouter(t)

	w := doJSON(r, http.MethodGet, "/config", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool             `json:"ok"`
		Data entity.AppConfig `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "51936494711", body.Data.WhatsAppNumber)
	assert.NotEmpty(t, body.Data.Logo)
	assert.NotEmpty(t, body.Data.SlideBackgrounds)
}

func TestCreateAndListMenu(t *testing.T) {
	r, _ := setupCatalogRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/menu", gin.H{
		"name":     "Carne Seca con Chifles",
		"price":    20,
		"category": "PLATOS",
		"tags":     []string{"almuerzo", "piurano"},
		"variants": []gin.H{
			{"name": "Personal", "price": 20},
			{"name": "Para compartir", "price": 35},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	list := doJSON(r, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, list.Code)

	var body struct {
		Data []entity.MenuItem `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Len(t, body.Data[0].Variants, 2)
}

func TestMenuItemRequiresNameAndPrice(t *testing.T) {
	r, _ := setupCatalogRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/menu", gin.H{"description": "sin nombre"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// borrar la categoría deja sus platos huérfanos, no los borra
func TestDeleteCategoryKeepsItems(t *testing.T) {
	r, db := setupCatalogRouter(t)

	var cat entity.Category
	db.Create(&entity.Category{Name: "SANGUCHES"})
	db.First(&cat, "name = ?", "SANGUCHES")
	db.Create(&entity.MenuItem{Name: "Pavo al Horno", Price: decimal.NewFromInt(15), Category: "SANGUCHES"})

	w := doJSON(r, http.MethodDelete, "/admin/categories/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cats int64
	db.Model(&entity.Category{}).Count(&cats)
	assert.Zero(t, cats)

	var items int64
	db.Model(&entity.MenuItem{}).Count(&items)
	assert.EqualValues(t, 1, items)
}
