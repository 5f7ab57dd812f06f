package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

type VentaService interface {
	// Registrar charges a direct kiosk sale against the active turn.
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*model.Venta, *model.Turno, error)
}

type ventaService struct {
	productos repository.ProductoRepository
	turnos    TurnoService
	fabrica   FabricaTransacciones
	ahora     func() time.Time
}

func NewVentaService(productos repository.ProductoRepository, turnos TurnoService, fabrica FabricaTransacciones) VentaService {
	return &ventaService{productos: productos, turnos: turnos, fabrica: fabrica, ahora: time.Now}
}

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*model.Venta, *model.Turno, error) {
	if _, err := s.turnos.Activo(ctx); err != nil {
		return nil, nil, err
	}

	items := make([]model.ItemFactura, 0, len(req.Items))
	productos := make([]*model.Producto, 0, len(req.Items))
	for _, ir := range req.Items {
		productoID, err := uuid.Parse(ir.ProductoID)
		if err != nil {
			return nil, nil, &ValidationError{Code: "invalid-id", Message: "producto_id inválido"}
		}
		producto, err := s.productos.FindByID(ctx, productoID)
		if err != nil {
			return nil, nil, &StateError{Code: "product-not-found", Message: "producto no encontrado"}
		}
		if !producto.Activo {
			return nil, nil, &StateError{Code: "product-inactive", Message: "el producto está inactivo"}
		}
		if producto.StockActual < ir.Cantidad {
			return nil, nil, &ValidationError{
				Code:    "insufficient-stock",
				Message: fmt.Sprintf("stock insuficiente de %s (quedan %d)", producto.Nombre, producto.StockActual),
			}
		}
		item := model.ItemFactura{
			ID:             uuid.New(),
			ProductoID:     &producto.ID,
			Descripcion:    producto.Nombre,
			PrecioUnitario: producto.Precio,
			Cantidad:       ir.Cantidad,
			Origen:         model.OrigenKiosco,
		}
		item.Recalcular()
		items = append(items, item)
		productos = append(productos, producto)
	}

	total := model.SumaItems(items)
	pago := model.AsignacionPago{
		Efectivo:      req.Pago.Efectivo,
		Transferencia: req.Pago.Transferencia,
		Expensa:       req.Pago.Expensa,
	}
	if err := ValidarAsignacion(pago, total); err != nil {
		return nil, nil, err
	}

	recibo, err := s.fabrica.ProximoRecibo(ctx)
	if err != nil {
		return nil, nil, err
	}
	venta := &model.Venta{
		ID:           uuid.New(),
		NumeroRecibo: recibo,
		Items:        items,
		Total:        total,
		Pago:         pago,
		Cliente:      req.Cliente,
		CreadaEn:     s.ahora(),
	}

	turno, err := s.turnos.Absorber(ctx, venta)
	if err != nil {
		return nil, nil, err
	}

	for i, it := range items {
		producto := productos[i]
		if err := s.productos.AjustarStock(ctx, producto.ID, -it.Cantidad); err != nil {
			return nil, nil, err
		}
		ref := venta.ID
		mov := &model.MovimientoStock{
			ID:            uuid.New(),
			ProductoID:    producto.ID,
			Tipo:          "venta",
			Cantidad:      -it.Cantidad,
			StockAnterior: producto.StockActual,
			StockNuevo:    max(producto.StockActual-it.Cantidad, 0),
			Motivo:        "venta de kiosco",
			ReferenciaID:  &ref,
		}
		if err := s.productos.CreateMovimiento(ctx, mov); err != nil {
			return nil, nil, err
		}
	}
	return venta, turno, nil
}
