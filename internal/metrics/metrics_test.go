package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

func TestTrack_CountsOnEntry(t *testing.T) {
	counter := RequestTotal.WithLabelValues("rest", "order", "create_order")
	before := testutil.ToFloat64(counter)

	done := Track("rest", "order", "create_order")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	done()
}

func TestRecordError_UsesFaultKindAsLabel(t *testing.T) {
	counter := ErrorTotal.WithLabelValues("grpc", "payment", "notification_failed")
	before := testutil.ToFloat64(counter)

	RecordError("grpc", "payment", domain.FaultNotificationFailed)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestActiveConnections_Gauge(t *testing.T) {
	gauge := ActiveConnections.WithLabelValues("jsonrpc", "order")
	before := testutil.ToFloat64(gauge)

	gauge.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(gauge))
	gauge.Dec()
	assert.Equal(t, before, testutil.ToFloat64(gauge))
}
