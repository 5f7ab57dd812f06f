package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/dto"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/model"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/repository"
)

// GeneradorPDF renders a closure summary as a PDF document.
type GeneradorPDF interface {
	CierrePDF(cierre *model.CierreTurno, transacciones []model.Transaccion) ([]byte, error)
}

// ColaJobs enqueues background jobs (email delivery, backups).
type ColaJobs interface {
	Encolar(ctx context.Context, cola string, payload any) error
}

// ColaEmail is the queue consumed by the email worker.
const ColaEmail = "jobs:email"

// EmailCierreJob is the payload pushed to ColaEmail.
type EmailCierreJob struct {
	CierreID uuid.UUID `json:"cierre_id"`
	Email    string    `json:"email"`
}

type CierreService interface {
	// Registrar archives a closure. Closures are immutable once written.
	Registrar(ctx context.Context, c *model.CierreTurno) error
	Listar(ctx context.Context, filter dto.CierreFilter) ([]model.CierreTurno, int64, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.CierreTurno, error)
	// ExportarCSV flattens every archived closure into one spreadsheet.
	ExportarCSV(ctx context.Context) ([]byte, error)
	// ExportarTurnoCSV exports a single turn's log (archived or active).
	ExportarTurnoCSV(ctx context.Context, turnoID uuid.UUID) ([]byte, error)
	GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	EnviarPorEmail(ctx context.Context, id uuid.UUID, email string) error
}

type cierreService struct {
	repo   repository.CierreRepository
	turnos repository.TurnoRepository
	pdf    GeneradorPDF
	cola   ColaJobs
}

func NewCierreService(repo repository.CierreRepository, turnos repository.TurnoRepository, pdf GeneradorPDF, cola ColaJobs) CierreService {
	return &cierreService{repo: repo, turnos: turnos, pdf: pdf, cola: cola}
}

func (s *cierreService) Registrar(ctx context.Context, c *model.CierreTurno) error {
	return s.repo.Create(ctx, c)
}

func (s *cierreService) Listar(ctx context.Context, filter dto.CierreFilter) ([]model.CierreTurno, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *cierreService) Obtener(ctx context.Context, id uuid.UUID) (*model.CierreTurno, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StateError{Code: "closure-not-found", Message: "cierre no encontrado"}
	}
	return c, err
}

// ── CSV ───────────────────────────────────────────────────────────────────────
// One row per line item per nonzero payment component, so a combined payment
// shows each method's share. MontoMétodo is always positive; TotalTransacción
// carries the sign (withdrawals are negative).

var csvCabecera = []string{
	"Fecha", "Hora", "Tipo", "Recibo", "Cliente", "Origen",
	"Producto/Servicio", "Cantidad", "PrecioUnitario", "Subtotal",
	"MétodoPago", "MontoMétodo", "TotalTransacción",
}

func (s *cierreService) ExportarCSV(ctx context.Context) ([]byte, error) {
	cierres, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvCabecera); err != nil {
		return nil, err
	}
	for i := range cierres {
		transacciones, err := s.transaccionesDe(ctx, cierres[i].TurnoID)
		if err != nil {
			return nil, err
		}
		if err := escribirFilas(w, transacciones); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *cierreService) ExportarTurnoCSV(ctx context.Context, turnoID uuid.UUID) ([]byte, error) {
	transacciones, err := s.transaccionesDe(ctx, turnoID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvCabecera); err != nil {
		return nil, err
	}
	if err := escribirFilas(w, transacciones); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (s *cierreService) transaccionesDe(ctx context.Context, turnoID uuid.UUID) ([]model.Transaccion, error) {
	regs, err := s.turnos.ListTransacciones(ctx, turnoID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Transaccion, 0, len(regs))
	for i := range regs {
		t, err := regs[i].Decodificar()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func escribirFilas(w *csv.Writer, transacciones []model.Transaccion) error {
	for _, t := range transacciones {
		if err := escribirTransaccion(w, t); err != nil {
			return err
		}
	}
	return nil
}

func escribirTransaccion(w *csv.Writer, t model.Transaccion) error {
	fecha := model.FechaDe(t)
	total := model.ImporteDe(t)
	recibo := model.ReciboDe(t)

	var (
		tipo    string
		cliente string
		items   []model.ItemFactura
	)
	switch v := t.(type) {
	case *model.Venta:
		tipo, cliente, items = "Venta Kiosco", v.Cliente, v.Items
	case *model.FacturaCancha:
		tipo, cliente, items = "Factura Cancha", v.Cliente, v.Items
	case *model.Retiro:
		tipo = "Retiro"
		items = []model.ItemFactura{{Descripcion: v.Motivo, Cantidad: 1, PrecioUnitario: v.Monto, Subtotal: v.Monto}}
	case *model.CajaInicial:
		tipo = "Caja Inicial"
		items = []model.ItemFactura{{Descripcion: "Apertura de caja", Cantidad: 1, PrecioUnitario: v.Monto, Subtotal: v.Monto}}
	default:
		return fmt.Errorf("transaccion desconocida: %T", t)
	}

	for _, it := range items {
		for _, comp := range componentes(model.AsignacionDe(t)) {
			fila := []string{
				fecha.Format("02/01/2006"),
				fecha.Format("15:04"),
				tipo,
				recibo,
				cliente,
				string(it.Origen),
				it.Descripcion,
				fmt.Sprintf("%d", it.Cantidad),
				it.PrecioUnitario.StringFixed(2),
				it.Subtotal.StringFixed(2),
				string(comp.metodo),
				comp.monto.Abs().StringFixed(2),
				total.StringFixed(2),
			}
			if err := w.Write(fila); err != nil {
				return err
			}
		}
	}
	return nil
}

type componente struct {
	metodo model.MetodoPago
	monto  decimal.Decimal
}

func componentes(p model.AsignacionPago) []componente {
	var out []componente
	if !p.Efectivo.IsZero() {
		out = append(out, componente{model.MetodoEfectivo, p.Efectivo})
	}
	if !p.Transferencia.IsZero() {
		out = append(out, componente{model.MetodoTransferencia, p.Transferencia})
	}
	if !p.Expensa.IsZero() {
		out = append(out, componente{model.MetodoExpensa, p.Expensa})
	}
	return out
}

// ── PDF / Email ───────────────────────────────────────────────────────────────

func (s *cierreService) GenerarPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	cierre, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	transacciones, err := s.transaccionesDe(ctx, cierre.TurnoID)
	if err != nil {
		return nil, err
	}
	return s.pdf.CierrePDF(cierre, transacciones)
}

// EnviarPorEmail queues the delivery; the email worker renders the PDF and
// sends it so the HTTP request is not held up by SMTP.
func (s *cierreService) EnviarPorEmail(ctx context.Context, id uuid.UUID, email string) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	return s.cola.Encolar(ctx, ColaEmail, EmailCierreJob{CierreID: id, Email: email})
}
