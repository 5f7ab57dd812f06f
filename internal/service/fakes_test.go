package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

// ── In-memory Repository Fakes ────────────────────────────────────────────────

type fakeTurnoRepo struct {
	mu     sync.Mutex
	turnos map[uuid.UUID]*model.Turno
	regs   []model.RegistroTransaccion
}

func newFakeTurnoRepo() *fakeTurnoRepo {
	return &fakeTurnoRepo{turnos: make(map[uuid.UUID]*model.Turno)}
}

func (r *fakeTurnoRepo) Create(_ context.Context, t *model.Turno) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *t
	copia.Transacciones = nil
	r.turnos[t.ID] = &copia
	return nil
}

func (r *fakeTurnoRepo) FindActivo(_ context.Context) (*model.Turno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.turnos {
		if t.Estado == model.TurnoActivo {
			copia := *t
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTurnoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Turno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.turnos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *t
	return &copia, nil
}

func (r *fakeTurnoRepo) Update(_ context.Context, t *model.Turno) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *t
	copia.Transacciones = nil
	r.turnos[t.ID] = &copia
	return nil
}

func (r *fakeTurnoRepo) AppendTransaccion(_ context.Context, reg *model.RegistroTransaccion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *fakeTurnoRepo) ListTransacciones(_ context.Context, turnoID uuid.UUID) ([]model.RegistroTransaccion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.RegistroTransaccion
	for _, reg := range r.regs {
		if reg.TurnoID == turnoID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeTurnoRepo) ListAll(_ context.Context) ([]model.Turno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Turno, 0, len(r.turnos))
	for _, t := range r.turnos {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AbiertoEn.Before(out[j].AbiertoEn) })
	return out, nil
}

func (r *fakeTurnoRepo) DB() *gorm.DB { return nil }

type fakeFacturaRepo struct {
	mu       sync.Mutex
	facturas map[uuid.UUID]*model.FacturaAbierta
}

func newFakeFacturaRepo() *fakeFacturaRepo {
	return &fakeFacturaRepo{facturas: make(map[uuid.UUID]*model.FacturaAbierta)}
}

func (r *fakeFacturaRepo) Create(_ context.Context, f *model.FacturaAbierta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *f
	r.facturas[f.ID] = &copia
	return nil
}

func (r *fakeFacturaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FacturaAbierta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *f
	copia.Items = append([]model.ItemFactura(nil), f.Items...)
	return &copia, nil
}

func (r *fakeFacturaRepo) List(_ context.Context) ([]model.FacturaAbierta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.FacturaAbierta, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreadaEn.Before(out[j].CreadaEn) })
	return out, nil
}

func (r *fakeFacturaRepo) Update(_ context.Context, f *model.FacturaAbierta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *f
	copia.Items = append([]model.ItemFactura(nil), f.Items...)
	r.facturas[f.ID] = &copia
	return nil
}

func (r *fakeFacturaRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.facturas, id)
	return nil
}

func (r *fakeFacturaRepo) CountAbiertas(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.facturas)), nil
}

type fakeContadorRepo struct {
	mu      sync.Mutex
	valores map[string]int64
}

func newFakeContadorRepo() *fakeContadorRepo {
	return &fakeContadorRepo{valores: make(map[string]int64)}
}

func (r *fakeContadorRepo) Incrementar(_ context.Context, clave string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valores[clave]++
	return r.valores[clave], nil
}

func (r *fakeContadorRepo) Valores(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.valores))
	for k, v := range r.valores {
		out[k] = v
	}
	return out, nil
}

func (r *fakeContadorRepo) Restaurar(_ context.Context, valores map[string]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range valores {
		r.valores[k] = v
	}
	return nil
}

type fakeProductoRepo struct {
	mu          sync.Mutex
	productos   map[uuid.UUID]*model.Producto
	movimientos []model.MovimientoStock
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *fakeProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) List(_ context.Context, soloActivos bool) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if soloActivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = max(p.StockActual+delta, 0)
	return nil
}

func (r *fakeProductoRepo) CreateMovimiento(_ context.Context, m *model.MovimientoStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *fakeProductoRepo) ListMovimientos(_ context.Context, productoID uuid.UUID) ([]model.MovimientoStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeServicioRepo struct {
	mu        sync.Mutex
	servicios map[uuid.UUID]*model.ServicioCancha
}

func newFakeServicioRepo() *fakeServicioRepo {
	return &fakeServicioRepo{servicios: make(map[uuid.UUID]*model.ServicioCancha)}
}

func (r *fakeServicioRepo) Create(_ context.Context, s *model.ServicioCancha) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *s
	r.servicios[s.ID] = &copia
	return nil
}

func (r *fakeServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ServicioCancha, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *s
	return &copia, nil
}

func (r *fakeServicioRepo) List(_ context.Context, soloActivos bool) ([]model.ServicioCancha, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ServicioCancha, 0, len(r.servicios))
	for _, s := range r.servicios {
		if soloActivos && !s.Activo {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServicioRepo) Update(_ context.Context, s *model.ServicioCancha) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *s
	r.servicios[s.ID] = &copia
	return nil
}

type fakeCierreRepo struct {
	mu      sync.Mutex
	cierres []model.CierreTurno
}

func newFakeCierreRepo() *fakeCierreRepo { return &fakeCierreRepo{} }

func (r *fakeCierreRepo) Create(_ context.Context, c *model.CierreTurno) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cierres = append(r.cierres, *c)
	return nil
}

func (r *fakeCierreRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CierreTurno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cierres {
		if r.cierres[i].ID == id {
			copia := r.cierres[i]
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCierreRepo) List(_ context.Context, filter dto.CierreFilter) ([]model.CierreTurno, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.CierreTurno(nil), r.cierres...)
	sort.Slice(out, func(i, j int) bool { return out[i].FinEn.After(out[j].FinEn) })
	return out, int64(len(out)), nil
}

func (r *fakeCierreRepo) ListAll(_ context.Context) ([]model.CierreTurno, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.CierreTurno(nil), r.cierres...)
	sort.Slice(out, func(i, j int) bool { return out[i].FinEn.After(out[j].FinEn) })
	return out, nil
}

// ── Fake infra ────────────────────────────────────────────────────────────────

type fakePDF struct{}

func (fakePDF) CierrePDF(*model.CierreTurno, []model.Transaccion) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type fakeCola struct {
	mu       sync.Mutex
	encolado map[string][]any
}

func newFakeCola() *fakeCola { return &fakeCola{encolado: make(map[string][]any)} }

func (c *fakeCola) Encolar(_ context.Context, cola string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.encolado[cola] = append(c.encolado[cola], payload)
	return nil
}
