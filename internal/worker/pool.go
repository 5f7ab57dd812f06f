package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

const maxAttempts = 3

// Handler processes one dequeued payload. A non-nil error requeues the job
// until maxAttempts, then it lands in the DLQ.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Handlers maps each queue to its processor.
type Handlers map[string]Handler

// envelope wraps a payload with its attempt count for requeueing.
type envelope struct {
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// StartPool launches numWorkers goroutines consuming every registered queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers Handlers) {
	queues := make([]string, 0, len(handlers))
	for q := range handlers {
		queues = append(queues, q)
	}
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, queues, handlers)
	}
	log.Info().Int("workers", numWorkers).Strs("colas", queues).Msg("worker pool iniciado")
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, queues []string, handlers Handlers) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker apagándose")
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, result[0], []byte(result[1]), handlers)
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, queue string, raw []byte, handlers Handlers) {
	handler, ok := handlers[queue]
	if !ok {
		log.Error().Str("cola", queue).Msg("cola sin handler")
		return
	}

	// Jobs are enqueued as bare payloads; requeued ones carry the envelope.
	env := envelope{Payload: raw}
	var maybe envelope
	if err := json.Unmarshal(raw, &maybe); err == nil && maybe.Attempts > 0 {
		env = maybe
	}

	if err := handler(ctx, env.Payload); err != nil {
		env.Attempts++
		log.Warn().Str("cola", queue).Int("intento", env.Attempts).Err(err).Msg("job falló")
		if env.Attempts >= maxAttempts {
			SendToDLQ(ctx, rdb, queue, env.Payload, err.Error(), env.Attempts)
			return
		}
		requeued, err := json.Marshal(env)
		if err != nil {
			log.Error().Err(err).Msg("no se pudo reencolar el job")
			return
		}
		if err := rdb.LPush(ctx, queue, requeued).Err(); err != nil {
			log.Error().Err(err).Str("cola", queue).Msg("no se pudo reencolar el job")
		}
	}
}

// NewHandlers wires the application services into queue handlers.
func NewHandlers(backups service.BackupService, emails *EmailWorker) Handlers {
	return Handlers{
		service.ColaBackup: func(ctx context.Context, _ json.RawMessage) error {
			return backups.Ejecutar(ctx)
		},
		service.ColaEmail: emails.Process,
	}
}
