package service

import "go-inventory-admin/internal/ws"

// Publisher receives stock events after a mutation commits. Nil disables
// broadcasting (tests).
type Publisher interface {
	PublishStock(evt ws.StockEvent)
}
