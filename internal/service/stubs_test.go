package service

// In-memory repository stubs shared by the service tests. They satisfy the
// repository interfaces without a database; DB() returns nil so runTx
// executes the callback directly.

import (
	"context"

	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.productos)), nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Proveedor ────────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.proveedores, id)
	return nil
}

func (r *stubProveedorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.proveedores)), nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.usuarios[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Venta ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListRecientes(ctx context.Context, limit int) ([]model.Venta, error) {
	out, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubVentaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.ventas {
		total = total.Add(v.Total)
	}
	return total, nil
}

func (r *stubVentaRepo) SumCantidadByProducto(_ context.Context, productoID uuid.UUID) (int64, error) {
	var n int64
	for _, v := range r.ventas {
		for _, d := range v.Detalles {
			if d.ProductoID == productoID {
				n += int64(d.Cantidad)
			}
		}
	}
	return n, nil
}

func (r *stubVentaRepo) HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	n, _ := r.SumCantidadByProducto(ctx, productoID)
	return n > 0, nil
}

func (r *stubVentaRepo) HasForCliente(_ context.Context, clienteID uuid.UUID) (bool, error) {
	for _, v := range r.ventas {
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Compra ───────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) Create(_ context.Context, _ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context) ([]model.Compra, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) SumTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range r.compras {
		total = total.Add(c.Total)
	}
	return total, nil
}

func (r *stubCompraRepo) SumCantidadByProducto(_ context.Context, productoID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.compras {
		for _, d := range c.Detalles {
			if d.ProductoID == productoID {
				n += int64(d.Cantidad)
			}
		}
	}
	return n, nil
}

func (r *stubCompraRepo) HasDetalleForProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	n, _ := r.SumCantidadByProducto(ctx, productoID)
	return n > 0, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── Alert dispatcher ─────────────────────────────────────────────────────────

type stubDispatcher struct {
	alertas []AlertaStock
}

func (d *stubDispatcher) Dispatch(_ context.Context, a AlertaStock) error {
	d.alertas = append(d.alertas, a)
	return nil
}

var _ AlertaDispatcher = (*stubDispatcher)(nil)

func decimalFromString(t interface{ Fatalf(string, ...interface{}) }, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// ── Fixture ──────────────────────────────────────────────────────────────────

// testEnv wires every service against the in-memory stubs.
type testEnv struct {
	productos   *stubProductoRepo
	clientes    *stubClienteRepo
	proveedores *stubProveedorRepo
	ventas      *stubVentaRepo
	compras     *stubCompraRepo
	dispatcher  *stubDispatcher

	inventarioSvc *InventarioService
	ventaSvc      *VentaService
	compraSvc     *CompraService
	productoSvc   *ProductoService
	clienteSvc    *ClienteService
	proveedorSvc  *ProveedorService
}

func newTestEnv() *testEnv {
	e := &testEnv{
		productos:   newStubProductoRepo(),
		clientes:    newStubClienteRepo(),
		proveedores: newStubProveedorRepo(),
		ventas:      newStubVentaRepo(),
		compras:     newStubCompraRepo(),
		dispatcher:  &stubDispatcher{},
	}
	e.inventarioSvc = NewInventarioService(e.productos, e.ventas, e.compras)
	e.ventaSvc = NewVentaService(e.ventas, e.clientes, e.productos, e.inventarioSvc, e.dispatcher)
	e.compraSvc = NewCompraService(e.compras, e.proveedores, e.productos)
	e.productoSvc = NewProductoService(e.productos, e.proveedores, e.ventas, e.compras, e.inventarioSvc)
	e.clienteSvc = NewClienteService(e.clientes, e.ventas)
	e.proveedorSvc = NewProveedorService(e.proveedores)
	return e
}

// seedProducto inserts a product with the given prices and returns it.
func (e *testEnv) seedProducto(nombre, precioCompra, precioVenta string) *model.Producto {
	p := &model.Producto{
		Nombre:       nombre,
		PrecioCompra: decimal.RequireFromString(precioCompra),
		PrecioVenta:  decimal.RequireFromString(precioVenta),
	}
	_ = e.productos.Create(context.Background(), p)
	return p
}

// seedCompra records purchased units directly in the ledger.
func (e *testEnv) seedCompra(productoID uuid.UUID, cantidad int, precio string) {
	proveedor := &model.Proveedor{Nombre: "Proveedor Test", RUC: "0000000000001"}
	_ = e.proveedores.Create(context.Background(), proveedor)
	pu := decimal.RequireFromString(precio)
	sub := pu.Mul(decimal.NewFromInt(int64(cantidad)))
	_ = e.compras.Create(context.Background(), nil, &model.Compra{
		ProveedorID: &proveedor.ID,
		Total:       sub,
		Detalles: []model.DetalleCompra{{
			ProductoID:     productoID,
			Cantidad:       cantidad,
			PrecioUnitario: pu,
			Subtotal:       sub,
		}},
	})
}
