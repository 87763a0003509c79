package repository

import (
	"context"

	"inventia/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	List(ctx context.Context) ([]model.Compra, error)
	Delete(ctx context.Context, id uuid.UUID) error

	SumTotal(ctx context.Context) (decimal.Decimal, error)
	// SumCantidadByProducto aggregates purchased units for one product over all history.
	SumCantidadByProducto(ctx context.Context, productoID uuid.UUID) (int64, error)
	HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error)

	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Compra) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Proveedor").First(&c, id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).Preload("Detalles.Producto").Preload("Proveedor").
		Order("fecha_compra DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// detalle_compras rows go with it (ON DELETE CASCADE)
	return r.db.WithContext(ctx).Delete(&model.Compra{}, id).Error
}

func (r *compraRepo) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Compra{}).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *compraRepo) SumCantidadByProducto(ctx context.Context, productoID uuid.UUID) (int64, error) {
	var cantidad int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCompra{}).
		Where("producto_id = ?", productoID).
		Select("COALESCE(SUM(cantidad), 0)").Scan(&cantidad).Error
	return cantidad, err
}

func (r *compraRepo) HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCompra{}).
		Where("producto_id = ?", productoID).Limit(1).Count(&n).Error
	return n > 0, err
}
