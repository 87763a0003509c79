package worker

// alerta_worker.go
// Processes low-stock alert jobs from QueueAlertas and notifies the operator
// inbox via SMTP. The circuit breaker keeps a downed relay from eating
// worker slots on every job.

import (
	"context"
	"encoding/json"
	"fmt"

	"inventia/internal/infra"
	"inventia/internal/service"

	"github.com/rs/zerolog/log"
)

type AlertaWorker struct {
	mailer       *infra.Mailer
	cb           *infra.CircuitBreaker
	destinatario string // operator inbox; empty disables delivery
}

func NewAlertaWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, destinatario string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, cb: cb, destinatario: destinatario}
}

// Process sends one low-stock notification. Errors bubble up so the pool can
// retry and eventually park the job in the DLQ.
func (w *AlertaWorker) Process(_ context.Context, raw json.RawMessage) error {
	var alerta service.AlertaStock
	if err := json.Unmarshal(raw, &alerta); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	if w.destinatario == "" {
		log.Debug().Str("producto", alerta.Nombre).Msg("alerta_worker: no recipient configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("Alerta de stock: %s (%s)", alerta.Nombre, alerta.Estado)
	body := fmt.Sprintf(
		"El producto %q quedó con %d unidades tras la última venta (estado: %s).\n\n"+
			"Producto ID: %s\n",
		alerta.Nombre, alerta.Stock, alerta.Estado, alerta.ProductoID,
	)

	err := w.cb.Execute(func() error {
		return w.mailer.Send(w.destinatario, subject, body)
	})
	if err != nil {
		log.Error().Err(err).Str("producto", alerta.Nombre).Msg("alerta_worker: failed to send alert")
		return err
	}
	log.Info().Str("producto", alerta.Nombre).Int("stock", alerta.Stock).
		Msg("alerta_worker: alert sent")
	return nil
}
