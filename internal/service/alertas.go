package service

import "context"

// AlertaStock is the payload queued when a sale leaves a product at or below
// the low-stock threshold.
type AlertaStock struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Stock      int    `json:"stock"`
	Estado     string `json:"estado"`
}

// AlertaDispatcher queues low-stock alerts for asynchronous delivery. The
// sale itself never waits on (or fails because of) alert plumbing.
type AlertaDispatcher interface {
	Dispatch(ctx context.Context, alerta AlertaStock) error
}
