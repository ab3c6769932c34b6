package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Defaults(t *testing.T) {
	cfg := Order()

	assert.Equal(t, "order", cfg.Name)
	assert.Equal(t, "8001", cfg.RESTPort)
	assert.Equal(t, "8011", cfg.JSONRPCPort)
	assert.Equal(t, "8021", cfg.GRPCPort)
	assert.Equal(t, "9021", cfg.MetricsPort)
	assert.Equal(t, "http://localhost:8002", cfg.DownstreamRESTURL)
	assert.Equal(t, "localhost:8022", cfg.DownstreamGRPCAddr)
	assert.Equal(t, 30*time.Second, cfg.ClientTimeout)
}

func TestPayment_Defaults(t *testing.T) {
	cfg := Payment()

	assert.Equal(t, "8002", cfg.RESTPort)
	assert.Equal(t, 10*time.Millisecond, cfg.ProcessingDelay)
	assert.Equal(t, "http://localhost:8003", cfg.DownstreamRESTURL)
}

func TestNotification_Defaults(t *testing.T) {
	cfg := Notification()

	assert.Equal(t, "8003", cfg.RESTPort)
	assert.Equal(t, "9023", cfg.MetricsPort)
	assert.Equal(t, 5*time.Millisecond, cfg.ProcessingDelay)
	assert.Empty(t, cfg.DownstreamRESTURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ORDER_REST_PORT", "18001")
	t.Setenv("PAYMENT_SERVICE_URL", "http://payment:8002")
	t.Setenv("CLIENT_TIMEOUT", "5s")

	cfg := Order()
	assert.Equal(t, "18001", cfg.RESTPort)
	assert.Equal(t, "http://payment:8002", cfg.DownstreamRESTURL)
	assert.Equal(t, 5*time.Second, cfg.ClientTimeout)
}

func TestDurationOverride_IgnoresGarbage(t *testing.T) {
	t.Setenv("PAYMENT_PROCESSING_DELAY", "not-a-duration")

	cfg := Payment()
	assert.Equal(t, 10*time.Millisecond, cfg.ProcessingDelay)
}
