package handler

import (
	"time"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
)

func toTotalesResponse(t model.TotalesTurno) dto.TotalesResponse {
	return dto.TotalesResponse{
		Caja:          t.Caja,
		Transferencia: t.Transferencia,
		Expensa:       t.Expensa,
		General:       t.General,
	}
}

func toTurnoResponse(t *model.Turno) dto.TurnoResponse {
	resp := dto.TurnoResponse{
		ID:          t.ID.String(),
		Operador:    t.Operador,
		Estado:      string(t.Estado),
		CajaInicial: t.CajaInicial,
		Totales:     toTotalesResponse(t.Totales),
		AbiertoEn:   t.AbiertoEn.Format(time.RFC3339),
	}
	if t.CerradoEn != nil {
		s := t.CerradoEn.Format(time.RFC3339)
		resp.CerradoEn = &s
	}
	for _, tx := range t.Transacciones {
		resp.Transacciones = append(resp.Transacciones, dto.TransaccionResponse{
			ID:      idDe(tx),
			Tipo:    tipoDe(tx),
			Recibo:  model.ReciboDe(tx),
			Importe: model.ImporteDe(tx),
			Fecha:   model.FechaDe(tx).Format(time.RFC3339),
		})
	}
	return resp
}

func idDe(t model.Transaccion) string {
	switch v := t.(type) {
	case *model.Venta:
		return v.ID.String()
	case *model.FacturaCancha:
		return v.ID.String()
	case *model.Retiro:
		return v.ID.String()
	case *model.CajaInicial:
		return v.ID.String()
	default:
		return ""
	}
}

func tipoDe(t model.Transaccion) string {
	switch t.(type) {
	case *model.Venta:
		return string(model.TipoVenta)
	case *model.FacturaCancha:
		return string(model.TipoFacturaCancha)
	case *model.Retiro:
		return string(model.TipoRetiro)
	case *model.CajaInicial:
		return string(model.TipoCajaInicial)
	default:
		return ""
	}
}

func toItemResponse(it model.ItemFactura) dto.ItemResponse {
	resp := dto.ItemResponse{
		ID:             it.ID.String(),
		Descripcion:    it.Descripcion,
		PrecioUnitario: it.PrecioUnitario,
		Cantidad:       it.Cantidad,
		Subtotal:       it.Subtotal,
		Origen:         string(it.Origen),
		PrecioEditable: it.PrecioEditable,
	}
	if it.ProductoID != nil {
		s := it.ProductoID.String()
		resp.ProductoID = &s
	}
	return resp
}

func toFacturaResponse(f *model.FacturaAbierta) dto.FacturaResponse {
	items := make([]dto.ItemResponse, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, toItemResponse(it))
	}
	return dto.FacturaResponse{
		ID:         f.ID.String(),
		Cancha:     f.Cancha,
		Cliente:    f.Cliente,
		NumeroLote: f.NumeroLote,
		Items:      items,
		Total:      f.Total,
		CreadaEn:   f.CreadaEn.Format(time.RFC3339),
	}
}

func toCierreResponse(cr *model.CierreTurno) dto.CierreResponse {
	return dto.CierreResponse{
		ID:                    cr.ID.String(),
		TurnoID:               cr.TurnoID.String(),
		Operador:              cr.Operador,
		InicioEn:              cr.InicioEn.Format(time.RFC3339),
		FinEn:                 cr.FinEn.Format(time.RFC3339),
		Totales:               toTotalesResponse(cr.Totales),
		CantidadTransacciones: cr.CantidadTransacciones,
	}
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		StockActual: p.StockActual,
		StockMinimo: p.StockMinimo,
		Nivel:       string(p.Nivel()),
		Activo:      p.Activo,
	}
}

func toServicioResponse(s *model.ServicioCancha) dto.ServicioResponse {
	return dto.ServicioResponse{
		ID:        s.ID.String(),
		Nombre:    s.Nombre,
		Categoria: s.Categoria,
		Precio:    s.Precio,
		Activo:    s.Activo,
	}
}
