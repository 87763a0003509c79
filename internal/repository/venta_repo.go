package repository

import (
	"context"

	"inventia/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// Create persists the venta and its detalles as one insert tree.
	// Callers pass the transaction handle so parent and children share it.
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Venta, error)
	Delete(ctx context.Context, id uuid.UUID) error

	SumTotal(ctx context.Context) (decimal.Decimal, error)
	// SumCantidadByProducto aggregates sold units for one product over all history.
	SumCantidadByProducto(ctx context.Context, productoID uuid.UUID) (int64, error)
	HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error)
	HasForCliente(ctx context.Context, clienteID uuid.UUID) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Cliente").First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Cliente").
		Order("fecha_venta DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListRecientes(ctx context.Context, limit int) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Cliente").
		Order("fecha_venta DESC").Limit(limit).Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// detalle_ventas rows go with it (ON DELETE CASCADE)
	return r.db.WithContext(ctx).Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *ventaRepo) SumCantidadByProducto(ctx context.Context, productoID uuid.UUID) (int64, error) {
	var cantidad int64
	err := r.db.WithContext(ctx).Model(&model.DetalleVenta{}).
		Where("producto_id = ?", productoID).
		Select("COALESCE(SUM(cantidad), 0)").Scan(&cantidad).Error
	return cantidad, err
}

func (r *ventaRepo) HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DetalleVenta{}).
		Where("producto_id = ?", productoID).Limit(1).Count(&n).Error
	return n > 0, err
}

func (r *ventaRepo) HasForCliente(ctx context.Context, clienteID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("cliente_id = ?", clienteID).Limit(1).Count(&n).Error
	return n > 0, err
}
