package services_test

import (
	"testing"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddMergesByItemAndVariant(t *testing.T) {
	db := setupTestDB(t)
	sanguche, chicha := seedTestMenu(t, db)
	svc := newCartService(db)

	// mismo plato sin variante, tres veces → una sola línea con qty 3
	for i := 0; i < 3; i++ {
		err := svc.Add("web-1", &services.AddToCartIn{MenuItemID: sanguche.ID})
		assert.NoError(t, err)
	}

	// mismo plato con variante → línea aparte
	jarra := chicha.Variants[1]
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: chicha.ID, VariantID: jarra.ID}))
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: chicha.ID, VariantID: jarra.ID}))
	// y la otra variante abre su propia línea
	vaso := chicha.Variants[0]
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: chicha.ID, VariantID: vaso.ID}))

	cart, _, err := svc.Get("web-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 3)

	byKey := map[[2]uint]int{}
	for _, it := range cart.Items {
		byKey[[2]uint{it.MenuItemID, it.VariantID}] = it.Qty
	}
	assert.Equal(t, 3, byKey[[2]uint{sanguche.ID, 0}])
	assert.Equal(t, 2, byKey[[2]uint{chicha.ID, jarra.ID}])
	assert.Equal(t, 1, byKey[[2]uint{chicha.ID, vaso.ID}])
}

func TestCartTotalUsesVariantPrice(t *testing.T) {
	db := setupTestDB(t)
	sanguche, chicha := seedTestMenu(t, db)
	svc := newCartService(db)

	// 2 × 15 (precio base) + 1 × 12 (precio de la variante Jarra)
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: sanguche.ID, Qty: 2}))
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: chicha.ID, VariantID: chicha.Variants[1].ID}))

	_, total, err := svc.Get("web-1")
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(42)), "got total %s", total)
}

func TestAddRejectsUnknownVariant(t *testing.T) {
	db := setupTestDB(t)
	sanguche, _ := seedTestMenu(t, db)
	svc := newCartService(db)

	err := svc.Add("web-1", &services.AddToCartIn{MenuItemID: sanguche.ID, VariantID: 999})
	assert.EqualError(t, err, "invalid variant")
}

func TestUpdateQtyFloorsAtOne(t *testing.T) {
	db := setupTestDB(t)
	sanguche, _ := seedTestMenu(t, db)
	svc := newCartService(db)

	assert.NoError(t, svc.Add("pos-1", &services.AddToCartIn{MenuItemID: sanguche.ID, Qty: 2}))
	cart, _, _ := svc.Get("pos-1")
	itemID := cart.Items[0].ID

	// bajar de 1 no borra la línea: queda en 1
	assert.NoError(t, svc.UpdateQty("pos-1", itemID, -5))

	cart, total, err := svc.Get("pos-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)
	assert.True(t, total.Equal(decimal.NewFromInt(15)))

	// subir funciona normal
	assert.NoError(t, svc.UpdateQty("pos-1", itemID, 3))
	cart, _, _ = svc.Get("pos-1")
	assert.Equal(t, 4, cart.Items[0].Qty)
}

// línea con precio en céntimos: la multiplicación queda exacta tras los deltas
func TestUpdateQtyKeepsCentsExact(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	caramelo := &entity.MenuItem{Name: "Caramelo", Price: decimal.RequireFromString("0.10"), Category: "EXTRAS"}
	assert.NoError(t, db.Create(caramelo).Error)

	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: caramelo.ID}))
	cart, _, _ := svc.Get("web-1")
	itemID := cart.Items[0].ID

	assert.NoError(t, svc.UpdateQty("web-1", itemID, 2))

	cart, total, err := svc.Get("web-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Qty)
	assert.True(t, cart.Items[0].Total.Equal(decimal.RequireFromString("0.30")),
		"got line total %s", cart.Items[0].Total)
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")), "got total %s", total)
}

func TestRemoveAndClear(t *testing.T) {
	db := setupTestDB(t)
	sanguche, chicha := seedTestMenu(t, db)
	svc := newCartService(db)

	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	assert.NoError(t, svc.Add("web-1", &services.AddToCartIn{MenuItemID: chicha.ID}))

	cart, _, _ := svc.Get("web-1")
	assert.NoError(t, svc.RemoveItem("web-1", cart.Items[0].ID))

	cart, _, _ = svc.Get("web-1")
	assert.Len(t, cart.Items, 1)

	assert.NoError(t, svc.Clear("web-1"))
	cart, total, _ := svc.Get("web-1")
	assert.Empty(t, cart.Items)
	assert.True(t, total.IsZero())

	// carritos de otros clientes no se tocan
	assert.NoError(t, svc.Add("web-2", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	assert.NoError(t, svc.Clear("web-1"))
	cart2, _, _ := svc.Get("web-2")
	assert.Len(t, cart2.Items, 1)
}
