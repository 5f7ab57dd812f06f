package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

// MaxFacturasAbiertas caps how many court invoices can run at once.
const MaxFacturasAbiertas = 3

type FacturaService interface {
	Abrir(ctx context.Context, req dto.AbrirFacturaRequest) (*model.FacturaAbierta, error)
	Listar(ctx context.Context) ([]model.FacturaAbierta, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.FacturaAbierta, error)
	AgregarKiosco(ctx context.Context, id uuid.UUID, req dto.AgregarKioscoRequest) (*model.FacturaAbierta, error)
	AgregarPersonalizado(ctx context.Context, id uuid.UUID, req dto.AgregarPersonalizadoRequest) (*model.FacturaAbierta, error)
	AgregarServicio(ctx context.Context, id uuid.UUID, req dto.AgregarServicioRequest) (*model.FacturaAbierta, error)
	EditarItem(ctx context.Context, id, itemID uuid.UUID, req dto.EditarItemRequest) (*model.FacturaAbierta, error)
	QuitarItem(ctx context.Context, id, itemID uuid.UUID) (*model.FacturaAbierta, error)
	// Finalizar charges the invoice against the active turn and removes it.
	// Any failure leaves the open invoice untouched.
	Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarFacturaRequest) (*model.FacturaCancha, *model.Turno, error)
}

type facturaService struct {
	repo      repository.FacturaRepository
	productos repository.ProductoRepository
	servicios repository.ServicioRepository
	turnos    TurnoService
	fabrica   FabricaTransacciones
	ahora     func() time.Time
}

func NewFacturaService(
	repo repository.FacturaRepository,
	productos repository.ProductoRepository,
	servicios repository.ServicioRepository,
	turnos TurnoService,
	fabrica FabricaTransacciones,
) FacturaService {
	return &facturaService{
		repo:      repo,
		productos: productos,
		servicios: servicios,
		turnos:    turnos,
		fabrica:   fabrica,
		ahora:     time.Now,
	}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *facturaService) Abrir(ctx context.Context, req dto.AbrirFacturaRequest) (*model.FacturaAbierta, error) {
	n, err := s.repo.CountAbiertas(ctx)
	if err != nil {
		return nil, err
	}
	if n >= MaxFacturasAbiertas {
		return nil, &CapacityError{Limite: MaxFacturasAbiertas}
	}

	lote, err := s.fabrica.ProximoLote(ctx)
	if err != nil {
		return nil, err
	}
	f := &model.FacturaAbierta{
		ID:         uuid.New(),
		Cancha:     req.Cancha,
		Cliente:    req.Cliente,
		NumeroLote: lote,
		Items:      []model.ItemFactura{},
		CreadaEn:   s.ahora(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *facturaService) Listar(ctx context.Context) ([]model.FacturaAbierta, error) {
	return s.repo.List(ctx)
}

func (s *facturaService) Obtener(ctx context.Context, id uuid.UUID) (*model.FacturaAbierta, error) {
	f, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StateError{Code: "invoice-not-found", Message: "factura no encontrada"}
	}
	return f, err
}

// ── Agregar ítems ─────────────────────────────────────────────────────────────

// AgregarKiosco merges into an existing line for the same product; the unit
// price stays the one captured when the line was first added.
func (s *facturaService) AgregarKiosco(ctx context.Context, id uuid.UUID, req dto.AgregarKioscoRequest) (*model.FacturaAbierta, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, &ValidationError{Code: "invalid-id", Message: "producto_id inválido"}
	}
	producto, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		return nil, &StateError{Code: "product-not-found", Message: "producto no encontrado"}
	}
	if !producto.Activo {
		return nil, &StateError{Code: "product-inactive", Message: "el producto está inactivo"}
	}
	if producto.StockActual < req.Cantidad {
		return nil, &ValidationError{
			Code:    "insufficient-stock",
			Message: fmt.Sprintf("stock insuficiente de %s (quedan %d)", producto.Nombre, producto.StockActual),
		}
	}

	merged := false
	for i := range f.Items {
		it := &f.Items[i]
		if it.Origen == model.OrigenKiosco && it.ProductoID != nil && *it.ProductoID == producto.ID {
			it.Cantidad += req.Cantidad
			merged = true
			break
		}
	}
	if !merged {
		f.Items = append(f.Items, model.ItemFactura{
			ID:             uuid.New(),
			ProductoID:     &producto.ID,
			Descripcion:    producto.Nombre,
			PrecioUnitario: producto.Precio,
			Cantidad:       req.Cantidad,
			Origen:         model.OrigenKiosco,
		})
	}
	return s.guardar(ctx, f)
}

// AgregarPersonalizado never merges: each custom charge is its own line.
func (s *facturaService) AgregarPersonalizado(ctx context.Context, id uuid.UUID, req dto.AgregarPersonalizadoRequest) (*model.FacturaAbierta, error) {
	if !req.Precio.IsPositive() {
		return nil, &ValidationError{Code: "non-positive-amount", Message: "el precio debe ser positivo"}
	}
	if strings.TrimSpace(req.Descripcion) == "" {
		return nil, &ValidationError{Code: "empty-description", Message: "la descripción no puede estar vacía"}
	}
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Items = append(f.Items, model.ItemFactura{
		ID:             uuid.New(),
		Descripcion:    req.Descripcion,
		PrecioUnitario: req.Precio,
		Cantidad:       req.Cantidad,
		Origen:         model.OrigenPersonalizado,
	})
	return s.guardar(ctx, f)
}

func (s *facturaService) AgregarServicio(ctx context.Context, id uuid.UUID, req dto.AgregarServicioRequest) (*model.FacturaAbierta, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	servicioID, err := uuid.Parse(req.ServicioID)
	if err != nil {
		return nil, &ValidationError{Code: "invalid-id", Message: "servicio_id inválido"}
	}
	servicio, err := s.servicios.FindByID(ctx, servicioID)
	if err != nil {
		return nil, &StateError{Code: "service-not-found", Message: "servicio no encontrado"}
	}

	precio := servicio.Precio
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, &ValidationError{Code: "negative-amount", Message: "el precio no puede ser negativo"}
		}
		precio = *req.Precio
	}
	f.Items = append(f.Items, model.ItemFactura{
		ID:             uuid.New(),
		Descripcion:    servicio.Nombre,
		PrecioUnitario: precio,
		Cantidad:       req.Cantidad,
		Origen:         model.OrigenServicio,
		PrecioEditable: true,
	})
	return s.guardar(ctx, f)
}

// ── Editar / Quitar ───────────────────────────────────────────────────────────

func (s *facturaService) EditarItem(ctx context.Context, id, itemID uuid.UUID, req dto.EditarItemRequest) (*model.FacturaAbierta, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	item := buscarItem(f, itemID)
	if item == nil {
		return nil, &StateError{Code: "item-not-found", Message: "ítem no encontrado"}
	}
	if req.Precio != nil {
		if !item.PrecioEditable {
			return nil, &ValidationError{Code: "price-not-editable", Message: "el precio de este ítem no es editable"}
		}
		if req.Precio.IsNegative() {
			return nil, &ValidationError{Code: "negative-amount", Message: "el precio no puede ser negativo"}
		}
		item.PrecioUnitario = *req.Precio
	}
	if req.Cantidad > 0 {
		item.Cantidad = req.Cantidad
	}
	return s.guardar(ctx, f)
}

func (s *facturaService) QuitarItem(ctx context.Context, id, itemID uuid.UUID) (*model.FacturaAbierta, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	resto := f.Items[:0]
	encontrado := false
	for _, it := range f.Items {
		if it.ID == itemID {
			encontrado = true
			continue
		}
		resto = append(resto, it)
	}
	if !encontrado {
		return nil, &StateError{Code: "item-not-found", Message: "ítem no encontrado"}
	}
	f.Items = resto
	return s.guardar(ctx, f)
}

// ── Finalizar ─────────────────────────────────────────────────────────────────

func (s *facturaService) Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarFacturaRequest) (*model.FacturaCancha, *model.Turno, error) {
	f, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	f.RecalcularTotal()

	// The turn must exist before anything is minted or mutated.
	if _, err := s.turnos.Activo(ctx); err != nil {
		return nil, nil, err
	}

	pago := model.AsignacionPago{
		Efectivo:      req.Pago.Efectivo,
		Transferencia: req.Pago.Transferencia,
		Expensa:       req.Pago.Expensa,
	}
	if err := ValidarAsignacion(pago, f.Total); err != nil {
		return nil, nil, err
	}

	recibo, err := s.fabrica.ProximoRecibo(ctx)
	if err != nil {
		return nil, nil, err
	}
	cobro := &model.FacturaCancha{
		ID:               uuid.New(),
		NumeroRecibo:     recibo,
		FacturaAbiertaID: f.ID,
		Cancha:           f.Cancha,
		Cliente:          f.Cliente,
		NumeroLote:       f.NumeroLote,
		Items:            f.Items,
		Total:            f.Total,
		Pago:             pago,
		CreadaEn:         s.ahora(),
	}

	turno, err := s.turnos.Absorber(ctx, cobro)
	if err != nil {
		return nil, nil, err
	}

	if err := s.descontarStock(ctx, cobro); err != nil {
		return nil, nil, err
	}
	if err := s.repo.Delete(ctx, f.ID); err != nil {
		return nil, nil, err
	}
	return cobro, turno, nil
}

func (s *facturaService) descontarStock(ctx context.Context, cobro *model.FacturaCancha) error {
	for _, it := range cobro.Items {
		if it.Origen != model.OrigenKiosco || it.ProductoID == nil {
			continue
		}
		producto, err := s.productos.FindByID(ctx, *it.ProductoID)
		if err != nil {
			return err
		}
		if err := s.productos.AjustarStock(ctx, producto.ID, -it.Cantidad); err != nil {
			return err
		}
		ref := cobro.ID
		mov := &model.MovimientoStock{
			ID:            uuid.New(),
			ProductoID:    producto.ID,
			Tipo:          "factura_cancha",
			Cantidad:      -it.Cantidad,
			StockAnterior: producto.StockActual,
			StockNuevo:    max(producto.StockActual-it.Cantidad, 0),
			Motivo:        "venta en " + cobro.Cancha,
			ReferenciaID:  &ref,
		}
		if err := s.productos.CreateMovimiento(ctx, mov); err != nil {
			return err
		}
	}
	return nil
}

func (s *facturaService) guardar(ctx context.Context, f *model.FacturaAbierta) (*model.FacturaAbierta, error) {
	f.RecalcularTotal()
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func buscarItem(f *model.FacturaAbierta, itemID uuid.UUID) *model.ItemFactura {
	for i := range f.Items {
		if f.Items[i].ID == itemID {
			return &f.Items[i]
		}
	}
	return nil
}
