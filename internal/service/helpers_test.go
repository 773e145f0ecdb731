package service_test

import (
	"context"
	"testing"

	"garcolderp/internal/catalog"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"
	"garcolderp/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── Catalog fixture ───────────────────────────────────────────────────────────

func newTestCatalogo(t *testing.T) *catalog.Catalogo {
	t.Helper()
	estados := []model.Estado{
		{ID: uuid.New(), Nombre: model.EstadoVentaContado},
		{ID: uuid.New(), Nombre: model.EstadoVentaCredito},
		{ID: uuid.New(), Nombre: model.EstadoVentaCancelada},
		{ID: uuid.New(), Nombre: model.EstadoCompraContado},
		{ID: uuid.New(), Nombre: model.EstadoCompraCredito},
		{ID: uuid.New(), Nombre: model.EstadoCompraCancelada},
	}
	tipos := []model.TipoTransaccion{
		{ID: uuid.New(), Nombre: model.TipoIngreso},
		{ID: uuid.New(), Nombre: model.TipoRetiro},
		{ID: uuid.New(), Nombre: model.TipoPagoVenta},
		{ID: uuid.New(), Nombre: model.TipoPagoCompra},
		{ID: uuid.New(), Nombre: model.TipoGasto},
		{ID: uuid.New(), Nombre: model.TipoAporteInversion},
		{ID: uuid.New(), Nombre: model.TipoInteresInversion},
	}
	cat, err := catalog.New(estados, tipos)
	require.NoError(t, err)
	return cat
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubBancoRepo is an in-memory BancoRepository.
type stubBancoRepo struct {
	bancos map[uuid.UUID]*model.Banco
}

func newStubBancoRepo() *stubBancoRepo {
	return &stubBancoRepo{bancos: make(map[uuid.UUID]*model.Banco)}
}

func (r *stubBancoRepo) Create(_ context.Context, b *model.Banco) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bancos[b.ID] = b
	return nil
}

func (r *stubBancoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Banco, error) {
	b, ok := r.bancos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBancoRepo) List(_ context.Context) ([]model.Banco, error) {
	out := make([]model.Banco, 0, len(r.bancos))
	for _, b := range r.bancos {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBancoRepo) Update(_ context.Context, b *model.Banco) error {
	r.bancos[b.ID] = b
	return nil
}

func (r *stubBancoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bancos, id)
	return nil
}

func (r *stubBancoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Banco, error) {
	b, ok := r.bancos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBancoRepo) SaveTx(_ *gorm.DB, b *model.Banco) error {
	r.bancos[b.ID] = b
	return nil
}

func (r *stubBancoRepo) DB() *gorm.DB { return nil }

var _ repository.BancoRepository = (*stubBancoRepo)(nil)

// stubClienteRepo is an in-memory ClienteRepository.
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

func (r *stubClienteRepo) List(_ context.Context, _ string) ([]model.Cliente, error) {
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

func (r *stubClienteRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) SaveTx(_ *gorm.DB, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubProveedorRepo is an in-memory ProveedorRepository.
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

func (r *stubProveedorRepo) List(_ context.Context, _ string) ([]model.Proveedor, error) {
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

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// stubProductoRepo is an in-memory ProductoRepository.
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

func (r *stubProductoRepo) FindByReferencia(_ context.Context, referencia string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Referencia == referencia && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) UpdateCantidadTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Cantidad += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubVentaRepo is an in-memory VentaRepository.
type stubVentaRepo struct {
	ventas    map[uuid.UUID]*model.Venta
	abonos    map[uuid.UUID]*model.AbonoVenta
	ganancias map[uuid.UUID]*model.Ganancia // keyed by venta id
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas:    make(map[uuid.UUID]*model.Venta),
		abonos:    make(map[uuid.UUID]*model.AbonoVenta),
		ganancias: make(map[uuid.UUID]*model.Ganancia),
	}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	return r.find(id)
}

func (r *stubVentaRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	return r.find(id)
}

func (r *stubVentaRepo) find(id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	abonos := make([]model.AbonoVenta, 0)
	for _, a := range r.abonos {
		if a.VentaID == id {
			abonos = append(abonos, *a)
		}
	}
	v.Abonos = abonos
	return v, nil
}

func (r *stubVentaRepo) SaveTx(_ *gorm.DB, v *model.Venta) error {
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	for aid, a := range r.abonos {
		if a.VentaID == id {
			delete(r.abonos, aid)
		}
	}
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) CreateAbonoTx(_ *gorm.DB, a *model.AbonoVenta) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.abonos[a.ID] = a
	return nil
}

func (r *stubVentaRepo) FindAbonoByID(_ context.Context, id uuid.UUID) (*model.AbonoVenta, error) {
	a, ok := r.abonos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubVentaRepo) ListAbonos(_ context.Context, ventaID uuid.UUID) ([]model.AbonoVenta, error) {
	out := make([]model.AbonoVenta, 0)
	for _, a := range r.abonos {
		if a.VentaID == ventaID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) DeleteAbonoTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.abonos, id)
	return nil
}

func (r *stubVentaRepo) CreateGananciaTx(_ *gorm.DB, g *model.Ganancia) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.ganancias[g.VentaID] = g
	return nil
}

func (r *stubVentaRepo) FindGananciaByVentaID(_ context.Context, ventaID uuid.UUID) (*model.Ganancia, error) {
	g, ok := r.ganancias[ventaID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubVentaRepo) DeleteGananciaByVentaTx(_ *gorm.DB, ventaID uuid.UUID) error {
	delete(r.ganancias, ventaID)
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubCompraRepo is an in-memory CompraRepository.
type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
	abonos  map[uuid.UUID]*model.AbonoCompra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{
		compras: make(map[uuid.UUID]*model.Compra),
		abonos:  make(map[uuid.UUID]*model.AbonoCompra),
	}
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	return r.find(id)
}

func (r *stubCompraRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	return r.find(id)
}

func (r *stubCompraRepo) find(id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	abonos := make([]model.AbonoCompra, 0)
	for _, a := range r.abonos {
		if a.CompraID == id {
			abonos = append(abonos, *a)
		}
	}
	c.Abonos = abonos
	return c, nil
}

func (r *stubCompraRepo) SaveTx(_ *gorm.DB, c *model.Compra) error {
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	for aid, a := range r.abonos {
		if a.CompraID == id {
			delete(r.abonos, aid)
		}
	}
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) List(_ context.Context, _ dto.CompraFilter) ([]model.Compra, int64, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) CreateAbonoTx(_ *gorm.DB, a *model.AbonoCompra) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.abonos[a.ID] = a
	return nil
}

func (r *stubCompraRepo) FindAbonoByID(_ context.Context, id uuid.UUID) (*model.AbonoCompra, error) {
	a, ok := r.abonos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubCompraRepo) ListAbonos(_ context.Context, compraID uuid.UUID) ([]model.AbonoCompra, error) {
	out := make([]model.AbonoCompra, 0)
	for _, a := range r.abonos {
		if a.CompraID == compraID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubCompraRepo) DeleteAbonoTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.abonos, id)
	return nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// stubTransaccionRepo captures audit rows for assertion.
type stubTransaccionRepo struct {
	rows map[uuid.UUID]*model.Transaccion
}

func newStubTransaccionRepo() *stubTransaccionRepo {
	return &stubTransaccionRepo{rows: make(map[uuid.UUID]*model.Transaccion)}
}

func (r *stubTransaccionRepo) CreateTx(_ *gorm.DB, t *model.Transaccion) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.rows[t.ID] = t
	return nil
}

func (r *stubTransaccionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaccion, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransaccionRepo) List(_ context.Context, _ dto.TransaccionFilter) ([]model.Transaccion, int64, error) {
	out := make([]model.Transaccion, 0, len(r.rows))
	for _, t := range r.rows {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTransaccionRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *stubTransaccionRepo) DeleteByOrigenTx(_ *gorm.DB, origenTipo string, origenID uuid.UUID) error {
	for id, t := range r.rows {
		if t.OrigenTipo == origenTipo && t.OrigenID != nil && *t.OrigenID == origenID {
			delete(r.rows, id)
		}
	}
	return nil
}

func (r *stubTransaccionRepo) DB() *gorm.DB { return nil }

// porOrigen returns the stored rows correlated to one origin.
func (r *stubTransaccionRepo) porOrigen(origenTipo string, origenID uuid.UUID) []*model.Transaccion {
	out := make([]*model.Transaccion, 0)
	for _, t := range r.rows {
		if t.OrigenTipo == origenTipo && t.OrigenID != nil && *t.OrigenID == origenID {
			out = append(out, t)
		}
	}
	return out
}

var _ repository.TransaccionRepository = (*stubTransaccionRepo)(nil)

// stubGastoRepo is an in-memory GastoRepository.
type stubGastoRepo struct {
	gastos     map[uuid.UUID]*model.Gasto
	categorias map[uuid.UUID]*model.CategoriaGasto
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{
		gastos:     make(map[uuid.UUID]*model.Gasto),
		categorias: make(map[uuid.UUID]*model.CategoriaGasto),
	}
}

func (r *stubGastoRepo) CreateTx(_ *gorm.DB, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gasto, error) {
	g, ok := r.gastos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubGastoRepo) List(_ context.Context, _ dto.GastoFilter) ([]model.Gasto, int64, error) {
	out := make([]model.Gasto, 0, len(r.gastos))
	for _, g := range r.gastos {
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (r *stubGastoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.gastos, id)
	return nil
}

func (r *stubGastoRepo) CreateCategoria(_ context.Context, c *model.CategoriaGasto) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubGastoRepo) FindCategoriaByID(_ context.Context, id uuid.UUID) (*model.CategoriaGasto, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubGastoRepo) ListCategorias(_ context.Context) ([]model.CategoriaGasto, error) {
	out := make([]model.CategoriaGasto, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubGastoRepo) DeleteCategoria(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubGastoRepo) DB() *gorm.DB { return nil }

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// stubPrestamoRepo is an in-memory PrestamoRepository.
type stubPrestamoRepo struct {
	prestamos map[uuid.UUID]*model.Prestamo
}

func newStubPrestamoRepo() *stubPrestamoRepo {
	return &stubPrestamoRepo{prestamos: make(map[uuid.UUID]*model.Prestamo)}
}

func (r *stubPrestamoRepo) Create(_ context.Context, p *model.Prestamo) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.prestamos[p.ID] = p
	return nil
}

func (r *stubPrestamoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Prestamo, error) {
	p, ok := r.prestamos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPrestamoRepo) List(_ context.Context) ([]model.Prestamo, error) {
	out := make([]model.Prestamo, 0, len(r.prestamos))
	for _, p := range r.prestamos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPrestamoRepo) Update(_ context.Context, p *model.Prestamo) error {
	r.prestamos[p.ID] = p
	return nil
}

func (r *stubPrestamoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Prestamo, error) {
	p, ok := r.prestamos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPrestamoRepo) SaveTx(_ *gorm.DB, p *model.Prestamo) error {
	r.prestamos[p.ID] = p
	return nil
}

func (r *stubPrestamoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.prestamos, id)
	return nil
}

func (r *stubPrestamoRepo) DB() *gorm.DB { return nil }

var _ repository.PrestamoRepository = (*stubPrestamoRepo)(nil)

// stubInversionRepo is an in-memory InversionRepository.
type stubInversionRepo struct {
	inversiones map[uuid.UUID]*model.Inversion
}

func newStubInversionRepo() *stubInversionRepo {
	return &stubInversionRepo{inversiones: make(map[uuid.UUID]*model.Inversion)}
}

func (r *stubInversionRepo) Create(_ context.Context, i *model.Inversion) error {
	return r.CreateTx(nil, i)
}

func (r *stubInversionRepo) CreateTx(_ *gorm.DB, i *model.Inversion) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.inversiones[i.ID] = i
	return nil
}

func (r *stubInversionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Inversion, error) {
	i, ok := r.inversiones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubInversionRepo) List(_ context.Context) ([]model.Inversion, error) {
	out := make([]model.Inversion, 0, len(r.inversiones))
	for _, i := range r.inversiones {
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubInversionRepo) Update(_ context.Context, i *model.Inversion) error {
	r.inversiones[i.ID] = i
	return nil
}

func (r *stubInversionRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Inversion, error) {
	i, ok := r.inversiones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubInversionRepo) SaveTx(_ *gorm.DB, i *model.Inversion) error {
	r.inversiones[i.ID] = i
	return nil
}

func (r *stubInversionRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.inversiones, id)
	return nil
}

func (r *stubInversionRepo) DB() *gorm.DB { return nil }

var _ repository.InversionRepository = (*stubInversionRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

// fixture wires the full service graph over in-memory repositories. The nil
// DB() of every stub makes runTx execute closures directly, so the workflows
// run exactly the code they run in production, minus the database.
type fixture struct {
	cat *catalog.Catalogo

	bancoRepo       *stubBancoRepo
	clienteRepo     *stubClienteRepo
	proveedorRepo   *stubProveedorRepo
	productoRepo    *stubProductoRepo
	ventaRepo       *stubVentaRepo
	compraRepo      *stubCompraRepo
	transaccionRepo *stubTransaccionRepo
	gastoRepo       *stubGastoRepo
	prestamoRepo    *stubPrestamoRepo
	inversionRepo   *stubInversionRepo

	bancos        service.BancoService
	clientes      service.ClienteService
	productos     service.ProductoService
	transacciones service.TransaccionService
	ventas        service.VentaService
	compras       service.CompraService
	gastos        service.GastoService
	prestamos     service.PrestamoService
	inversiones   service.InversionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cat:             newTestCatalogo(t),
		bancoRepo:       newStubBancoRepo(),
		clienteRepo:     newStubClienteRepo(),
		proveedorRepo:   newStubProveedorRepo(),
		productoRepo:    newStubProductoRepo(),
		ventaRepo:       newStubVentaRepo(),
		compraRepo:      newStubCompraRepo(),
		transaccionRepo: newStubTransaccionRepo(),
		gastoRepo:       newStubGastoRepo(),
		prestamoRepo:    newStubPrestamoRepo(),
		inversionRepo:   newStubInversionRepo(),
	}
	f.bancos = service.NewBancoService(f.bancoRepo)
	f.clientes = service.NewClienteService(f.clienteRepo)
	f.productos = service.NewProductoService(f.productoRepo)
	f.transacciones = service.NewTransaccionService(f.transaccionRepo, f.bancos, f.clientes, f.cat)
	f.ventas = service.NewVentaService(f.ventaRepo, f.productos, f.bancos, f.clientes, f.transacciones, f.cat)
	f.compras = service.NewCompraService(f.compraRepo, f.proveedorRepo, f.productos, f.bancos, f.transacciones, f.cat)
	f.gastos = service.NewGastoService(f.gastoRepo, f.bancos, f.transacciones, f.cat)
	f.prestamos = service.NewPrestamoService(f.prestamoRepo, f.bancos, f.transacciones, f.cat)
	f.inversiones = service.NewInversionService(f.inversionRepo, f.bancos, f.transacciones, f.cat)
	return f
}

func (f *fixture) seedBanco(saldo string) *model.Banco {
	b := &model.Banco{ID: uuid.New(), Nombre: "Banco " + uuid.NewString()[:8], Saldo: dec(saldo)}
	f.bancoRepo.bancos[b.ID] = b
	return b
}

func (f *fixture) seedCliente(saldo string) *model.Cliente {
	c := &model.Cliente{ID: uuid.New(), Nombre: "Cliente " + uuid.NewString()[:8], Saldo: dec(saldo)}
	f.clienteRepo.clientes[c.ID] = c
	return c
}

func (f *fixture) seedProveedor() *model.Proveedor {
	p := &model.Proveedor{ID: uuid.New(), Nombre: "Proveedor " + uuid.NewString()[:8]}
	f.proveedorRepo.proveedores[p.ID] = p
	return p
}

func (f *fixture) seedProducto(cantidad int, precioCompra, precioVenta string) *model.Producto {
	p := &model.Producto{
		ID:           uuid.New(),
		Referencia:   uuid.NewString()[:8],
		Nombre:       "Producto " + uuid.NewString()[:8],
		PrecioCompra: dec(precioCompra),
		PrecioVenta:  dec(precioVenta),
		Cantidad:     cantidad,
		Activo:       true,
	}
	f.productoRepo.productos[p.ID] = p
	return p
}

func (f *fixture) seedCategoria() *model.CategoriaGasto {
	c := &model.CategoriaGasto{ID: uuid.New(), Nombre: "Categoria " + uuid.NewString()[:8]}
	f.gastoRepo.categorias[c.ID] = c
	return c
}
