package service

import "errors"

// Domain error taxonomy. Services wrap these with fmt.Errorf("%w: …") so
// handlers can map them to HTTP statuses with errors.Is while keeping a
// human-readable message for the operator.
var (
	// ErrNoEncontrado: a referenced entity id does not exist.
	ErrNoEncontrado = errors.New("no encontrado")

	// ErrValidacion: a field-level precondition failed (non-positive
	// quantity, negative price, missing required reference).
	ErrValidacion = errors.New("error de validacion")

	// ErrConflictoReferencial: a delete is blocked by dependent rows.
	ErrConflictoReferencial = errors.New("conflicto referencial")

	// ErrStockInsuficiente: a sale asks for more units than the derived
	// stock holds. Purchases have no analogous check.
	ErrStockInsuficiente = errors.New("stock insuficiente")

	// ErrCredenciales: login failed. Deliberately the same error for an
	// unknown username and a wrong password.
	ErrCredenciales = errors.New("credenciales invalidas")

	// ErrTokenInvalido: a JWT failed parsing, signature or expiry checks.
	ErrTokenInvalido = errors.New("token invalido")
)
