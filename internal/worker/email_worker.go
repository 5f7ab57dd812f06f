package worker

// email_worker.go
// Processes closure email jobs: renders the closure PDF and mails it so the
// HTTP request that queued it never waits on SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/infra"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

type EmailWorker struct {
	cierres service.CierreService
	mailer  *infra.Mailer
}

func NewEmailWorker(cierres service.CierreService, mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{cierres: cierres, mailer: mailer}
}

// Process renders and sends one closure email. Errors bubble up so the pool
// can retry and eventually DLQ the job.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var job service.EmailCierreJob
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Error().Err(err).Msg("email_worker: payload inválido")
		return nil // unparseable jobs are not retryable
	}

	cierre, err := w.cierres.Obtener(ctx, job.CierreID)
	if err != nil {
		return fmt.Errorf("email_worker: cierre %s: %w", job.CierreID, err)
	}
	pdf, err := w.cierres.GenerarPDF(ctx, job.CierreID)
	if err != nil {
		return fmt.Errorf("email_worker: pdf de %s: %w", job.CierreID, err)
	}

	subject := fmt.Sprintf("Cierre de turno — %s", cierre.FinEn.Format("02/01/2006"))
	body := fmt.Sprintf("Cierre del turno de %s (%s — %s). Total general: $%s.",
		cierre.Operador,
		cierre.InicioEn.Format("02/01/2006 15:04"),
		cierre.FinEn.Format("02/01/2006 15:04"),
		cierre.Totales.General.StringFixed(2))
	filename := fmt.Sprintf("cierre_%s.pdf", cierre.FinEn.Format("2006-01-02"))

	if err := w.mailer.EnviarCierre(job.Email, subject, body, pdf, filename); err != nil {
		return fmt.Errorf("email_worker: enviar a %s: %w", job.Email, err)
	}
	log.Info().Str("to", job.Email).Str("cierre", job.CierreID.String()).Msg("email_worker: cierre enviado")
	return nil
}
