package services

import (
	"errors"
	"strings"
	"time"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// CashService lleva la contabilidad del turno de caja: fondo de apertura,
// ventas acumuladas, entradas/salidas manuales y el arqueo al cierre.
// Estados: sin turno → open → closed, sin reapertura.
type CashService struct {
	DB        *gorm.DB
	Repo      *repository.CashRepository
	OrderRepo *repository.OrderRepository
}

func NewCashService(db *gorm.DB, repo *repository.CashRepository, orderRepo *repository.OrderRepository) *CashService {
	return &CashService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

var (
	ErrSessionAlreadyOpen = errors.New("a session is already open")
	ErrNoOpenSession      = errors.New("no open session")
	ErrBadAmount          = errors.New("amount must be positive")
	ErrMissingReason      = errors.New("reason is required")
	ErrBadMovementType    = errors.New("movement type must be entry or exit")
	ErrMissingCashier     = errors.New("cashier name is required")
)

type OpenShiftIn struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	UserName       string          `json:"userName"`
}

// OpenShift abre el turno. El chequeo "ya hay una sesión abierta" y el insert
// van dentro de la misma transacción para cerrar la carrera de dos cajas
// abriendo a la vez.
func (s *CashService) OpenShift(in *OpenShiftIn) (*entity.CashSession, error) {
	if strings.TrimSpace(in.UserName) == "" {
		return nil, ErrMissingCashier
	}
	if in.OpeningBalance.IsNegative() {
		return nil, ErrBadAmount
	}

	session := &entity.CashSession{
		OpenedAt:       time.Now(),
		OpeningBalance: in.OpeningBalance,
		TotalSales:     decimal.Zero,
		TotalEntry:     decimal.Zero,
		TotalExit:      decimal.Zero,
		Status:         entity.SessionOpen,
		UserName:       strings.TrimSpace(in.UserName),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		open, err := s.Repo.GetOpenSession(tx)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrSessionAlreadyOpen
		}
		return s.Repo.CreateSession(tx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *CashService) ActiveSession() (*entity.CashSession, error) {
	return s.Repo.GetOpenSession(s.DB)
}

type MovementIn struct {
	Type   string          `json:"type"` // entry | exit
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// RecordMovement registra un movimiento manual (sencillo para vuelto, compra
// de hielo...). Validación primero: sin motivo o monto no positivo no se toca
// la base. Bitácora + total corren en una sola transacción.
func (s *CashService) RecordMovement(in *MovementIn) (*entity.CashTransaction, error) {
	if in.Type != entity.MovementEntry && in.Type != entity.MovementExit {
		return nil, ErrBadMovementType
	}
	if !in.Amount.IsPositive() {
		return nil, ErrBadAmount
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrMissingReason
	}

	var movement *entity.CashTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		open, err := s.Repo.GetOpenSession(tx)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenSession
		}

		movement = &entity.CashTransaction{
			CashSessionID: open.ID,
			Type:          in.Type,
			Amount:        in.Amount,
			Reason:        strings.TrimSpace(in.Reason),
		}
		if err := s.Repo.CreateTransaction(tx, movement); err != nil {
			return err
		}
		if in.Type == entity.MovementEntry {
			return s.Repo.IncrementEntry(tx, open.ID, in.Amount)
		}
		return s.Repo.IncrementExit(tx, open.ID, in.Amount)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ExpectedCash = fondo + ventas EN EFECTIVO + entradas − salidas. Yape, Plin y
// Tarjeta suman a total_sales pero no tocan la gaveta física.
func (s *CashService) ExpectedCash(session *entity.CashSession) (decimal.Decimal, error) {
	cashSales := decimal.Zero
	if methodID, err := s.OrderRepo.GetMethodIDByName(entity.MethodEfectivo); err == nil {
		cashSales, err = s.OrderRepo.SumBySessionAndMethod(session.ID, methodID)
		if err != nil {
			return decimal.Zero, err
		}
	}
	return session.OpeningBalance.
		Add(cashSales).
		Add(session.TotalEntry).
		Sub(session.TotalExit), nil
}

// CloseShift sella el turno: calcula el efectivo esperado, lo deja como saldo
// de cierre y marca la sesión closed. Terminal, no hay reapertura.
func (s *CashService) CloseShift() (*entity.CashSession, error) {
	var closed *entity.CashSession
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		open, err := s.Repo.GetOpenSession(tx)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenSession
		}

		expected, err := s.ExpectedCash(open)
		if err != nil {
			return err
		}
		if err := s.Repo.CloseSession(tx, open.ID, expected, time.Now()); err != nil {
			return err
		}
		closed = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetSession(closed.ID)
}

// ----- Resumen del turno (dashboard POS) -----

type MethodTotal struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

type SessionSummary struct {
	Session       *entity.CashSession      `json:"session"`
	SalesByMethod []MethodTotal            `json:"salesByMethod"`
	CurrentCash   decimal.Decimal          `json:"currentCash"`
	Orders        []entity.Order           `json:"orders"`
	Movements     []entity.CashTransaction `json:"movements"`
}

func (s *CashService) Summary() (*SessionSummary, error) {
	open, err := s.Repo.GetOpenSession(s.DB)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNoOpenSession
	}

	byMethod := make([]MethodTotal, 0, 4)
	for _, name := range []string{"Efectivo", "Yape", "Plin", "Tarjeta"} {
		methodID, err := s.OrderRepo.GetMethodIDByName(name)
		if err != nil {
			continue
		}
		total, err := s.OrderRepo.SumBySessionAndMethod(open.ID, methodID)
		if err != nil {
			return nil, err
		}
		byMethod = append(byMethod, MethodTotal{Method: name, Total: total})
	}

	currentCash, err := s.ExpectedCash(open)
	if err != nil {
		return nil, err
	}

	orders, err := s.OrderRepo.ListBySession(open.ID)
	if err != nil {
		return nil, err
	}
	movements, err := s.Repo.ListTransactions(open.ID)
	if err != nil {
		return nil, err
	}

	return &SessionSummary{
		Session:       open,
		SalesByMethod: byMethod,
		CurrentCash:   currentCash,
		Orders:        orders,
		Movements:     movements,
	}, nil
}
