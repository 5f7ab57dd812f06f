package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// CloudBackupClient pushes full-state snapshots to a remote HTTP endpoint.
// The venue runs on a single on-prem box; the cloud copy is the only thing
// standing between a dead disk and losing the ledger.
type CloudBackupClient struct {
	url        string
	token      string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewCloudBackupClient(url, token string) *CloudBackupClient {
	return &CloudBackupClient{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// EstadoCircuito exposes the breaker state for the health endpoint.
func (c *CloudBackupClient) EstadoCircuito() string { return c.cb.State().String() }

// Habilitado reports whether a backup endpoint is configured.
func (c *CloudBackupClient) Habilitado() bool { return c.url != "" }

// Push uploads a snapshot through the circuit breaker. While the endpoint
// keeps failing the breaker fast-fails instead of hammering it.
func (c *CloudBackupClient) Push(ctx context.Context, snapshot []byte) error {
	if !c.Habilitado() {
		return nil
	}
	return c.cb.Execute(func() error {
		return c.push(ctx, snapshot)
	})
}

func (c *CloudBackupClient) push(ctx context.Context, snapshot []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(snapshot))
	if err != nil {
		return fmt.Errorf("backup: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backup: endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backup: endpoint returned %d", resp.StatusCode)
	}
	return nil
}
