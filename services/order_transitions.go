package services

import (
	"gorm.io/gorm"
)

// Transiciones de la cola de cocina. El guard por fila hace que dos cajeros
// tocando el mismo pedido no lo muevan dos veces: el segundo recibe conflicto.
//
//	Pendiente → Preparando → Completado
//	Pendiente / Preparando → Cancelado

func (s *OrderService) MarkPreparando(orderID uint) error {
	return s.transition(orderID, s.Status.Pendiente, s.Status.Preparando, "Preparando")
}

func (s *OrderService) MarkCompletado(orderID uint) error {
	return s.transition(orderID, s.Status.Preparando, s.Status.Completado, "Completado")
}

func (s *OrderService) MarkCancelado(orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return err
	}
	if o.OrderStatusID != s.Status.Pendiente && o.OrderStatusID != s.Status.Preparando {
		return ErrInvalidStatus
	}
	return s.transition(orderID, o.OrderStatusID, s.Status.Cancelado, "Cancelado")
}

func (s *OrderService) transition(orderID, from, to uint, statusName string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidStatus
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.OrderChanged(orderID, statusName)
	}
	return nil
}
