package services_test

import (
	"testing"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOpenAndCloseImmediately(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	session, err := cash.OpenShift(&services.OpenShiftIn{
		OpeningBalance: decimal.NewFromInt(50),
		UserName:       "María",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.SessionOpen, session.Status)

	// sin ventas ni movimientos: efectivo esperado == fondo de apertura
	closed, err := cash.CloseShift()
	assert.NoError(t, err)
	assert.Equal(t, entity.SessionClosed, closed.Status)
	assert.True(t, closed.ClosingBalance.Equal(decimal.NewFromInt(50)),
		"got closing balance %s", closed.ClosingBalance)
	assert.NotNil(t, closed.ClosedAt)
}

func TestOnlyOneOpenSession(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	_, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "María"})
	assert.NoError(t, err)

	_, err = cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(20), UserName: "José"})
	assert.ErrorIs(t, err, services.ErrSessionAlreadyOpen)

	// cerrado el turno, se puede abrir el siguiente
	_, err = cash.CloseShift()
	assert.NoError(t, err)
	_, err = cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(20), UserName: "José"})
	assert.NoError(t, err)
}

func TestOpenShiftValidation(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	_, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "  "})
	assert.ErrorIs(t, err, services.ErrMissingCashier)

	_, err = cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(-1), UserName: "María"})
	assert.ErrorIs(t, err, services.ErrBadAmount)
}

// venta en Efectivo sube la gaveta; Yape sube total_sales pero no la gaveta
func TestCashVsDigitalSales(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)
	carts := newCartService(db)
	orders := newOrderService(db)
	sanguche, _ := seedTestMenu(t, db)

	session, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "María"})
	assert.NoError(t, err)

	// 1 sánguche de 15 en Efectivo
	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Efectivo"})
	assert.NoError(t, err)

	// 1 sánguche de 15 por Yape
	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Yape"})
	assert.NoError(t, err)

	summary, err := cash.Summary()
	assert.NoError(t, err)

	// ambas ventas acumulan en total_sales
	assert.True(t, summary.Session.TotalSales.Equal(decimal.NewFromInt(30)),
		"got total sales %s", summary.Session.TotalSales)
	// pero solo el Efectivo cuenta para la gaveta: 50 + 15
	assert.True(t, summary.CurrentCash.Equal(decimal.NewFromInt(65)),
		"got current cash %s", summary.CurrentCash)

	byMethod := map[string]decimal.Decimal{}
	for _, m := range summary.SalesByMethod {
		byMethod[m.Method] = m.Total
	}
	assert.True(t, byMethod["Efectivo"].Equal(decimal.NewFromInt(15)))
	assert.True(t, byMethod["Yape"].Equal(decimal.NewFromInt(15)))
}

// montos con céntimos suman exacto en los acumuladores del turno
func TestCentAmountsStayExact(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)
	carts := newCartService(db)
	orders := newOrderService(db)

	caramelo := &entity.MenuItem{Name: "Caramelo", Price: decimal.RequireFromString("0.10"), Category: "EXTRAS"}
	assert.NoError(t, db.Create(caramelo).Error)

	session, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "María"})
	assert.NoError(t, err)

	// cobro de 0.10 y cobro de 0.20, ambos en Efectivo
	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: caramelo.ID}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Efectivo"})
	assert.NoError(t, err)

	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: caramelo.ID, Qty: 2}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Efectivo"})
	assert.NoError(t, err)

	opened, err := cash.ActiveSession()
	assert.NoError(t, err)
	assert.True(t, opened.TotalSales.Equal(decimal.RequireFromString("0.30")),
		"got total sales %s", opened.TotalSales)

	// los movimientos manuales también
	_, err = cash.RecordMovement(&services.MovementIn{Type: "entry", Amount: decimal.RequireFromString("0.10"), Reason: "sencillo"})
	assert.NoError(t, err)
	_, err = cash.RecordMovement(&services.MovementIn{Type: "entry", Amount: decimal.RequireFromString("0.20"), Reason: "sencillo"})
	assert.NoError(t, err)

	summary, err := cash.Summary()
	assert.NoError(t, err)
	assert.True(t, summary.Session.TotalEntry.Equal(decimal.RequireFromString("0.30")),
		"got total entry %s", summary.Session.TotalEntry)
	// 50 + 0.30 en Efectivo + 0.30 de entradas
	assert.True(t, summary.CurrentCash.Equal(decimal.RequireFromString("50.60")),
		"got current cash %s", summary.CurrentCash)
}

func TestMovementValidation(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	_, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "María"})
	assert.NoError(t, err)

	// sin motivo: rechazado y SIN tocar la base
	_, err = cash.RecordMovement(&services.MovementIn{Type: "exit", Amount: decimal.NewFromInt(5), Reason: "  "})
	assert.ErrorIs(t, err, services.ErrMissingReason)

	_, err = cash.RecordMovement(&services.MovementIn{Type: "exit", Amount: decimal.Zero, Reason: "hielo"})
	assert.ErrorIs(t, err, services.ErrBadAmount)

	_, err = cash.RecordMovement(&services.MovementIn{Type: "prestamo", Amount: decimal.NewFromInt(5), Reason: "hielo"})
	assert.ErrorIs(t, err, services.ErrBadMovementType)

	var count int64
	db.Model(&entity.CashTransaction{}).Count(&count)
	assert.Zero(t, count)

	session, _ := cash.ActiveSession()
	assert.True(t, session.TotalExit.IsZero())
	assert.True(t, session.TotalEntry.IsZero())
}

func TestMovementRequiresOpenSession(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	_, err := cash.RecordMovement(&services.MovementIn{Type: "entry", Amount: decimal.NewFromInt(5), Reason: "sencillo"})
	assert.ErrorIs(t, err, services.ErrNoOpenSession)
}

// escenario completo del turno: fondo 50 → venta 15 en Efectivo → salida 5
// por hielo → cierre con 60 en gaveta
func TestFullShiftScenario(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)
	carts := newCartService(db)
	orders := newOrderService(db)
	sanguche, _ := seedTestMenu(t, db)

	session, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(50), UserName: "María"})
	assert.NoError(t, err)

	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Efectivo"})
	assert.NoError(t, err)

	_, err = cash.RecordMovement(&services.MovementIn{Type: "exit", Amount: decimal.NewFromInt(5), Reason: "hielo"})
	assert.NoError(t, err)

	closed, err := cash.CloseShift()
	assert.NoError(t, err)

	assert.True(t, closed.TotalSales.Equal(decimal.NewFromInt(15)), "total sales %s", closed.TotalSales)
	assert.True(t, closed.TotalExit.Equal(decimal.NewFromInt(5)), "total exit %s", closed.TotalExit)
	// 50 + 15 + 0 − 5
	assert.True(t, closed.ClosingBalance.Equal(decimal.NewFromInt(60)), "closing %s", closed.ClosingBalance)

	// el cierre es terminal: no hay más movimientos ni cobros
	_, err = cash.RecordMovement(&services.MovementIn{Type: "entry", Amount: decimal.NewFromInt(1), Reason: "tarde"})
	assert.ErrorIs(t, err, services.ErrNoOpenSession)

	assert.NoError(t, carts.Add("pos-1", &services.AddToCartIn{MenuItemID: sanguche.ID}))
	_, err = orders.Cobro(&services.CobroReq{ClientKey: "pos-1", SessionID: session.ID, PaymentMethod: "Efectivo"})
	assert.ErrorIs(t, err, services.ErrSessionNotOpen)
}

func TestMovementsAccumulate(t *testing.T) {
	db := setupTestDB(t)
	cash := newCashService(db)

	_, err := cash.OpenShift(&services.OpenShiftIn{OpeningBalance: decimal.NewFromInt(100), UserName: "José"})
	assert.NoError(t, err)

	_, err = cash.RecordMovement(&services.MovementIn{Type: "entry", Amount: decimal.NewFromInt(20), Reason: "sencillo para vuelto"})
	assert.NoError(t, err)
	_, err = cash.RecordMovement(&services.MovementIn{Type: "exit", Amount: decimal.NewFromInt(8), Reason: "hielo"})
	assert.NoError(t, err)
	_, err = cash.RecordMovement(&services.MovementIn{Type: "exit", Amount: decimal.NewFromInt(2), Reason: "bolsas"})
	assert.NoError(t, err)

	session, _ := cash.ActiveSession()
	assert.True(t, session.TotalEntry.Equal(decimal.NewFromInt(20)))
	assert.True(t, session.TotalExit.Equal(decimal.NewFromInt(10)))

	summary, err := cash.Summary()
	assert.NoError(t, err)
	assert.Len(t, summary.Movements, 3)
	// 100 + 0 ventas + 20 − 10
	assert.True(t, summary.CurrentCash.Equal(decimal.NewFromInt(110)), "current cash %s", summary.CurrentCash)
}
