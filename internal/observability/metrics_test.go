package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestObserveStorageCountsOutcome(t *testing.T) {
	counter := storageOperations.WithLabelValues("goal", "get", OutcomeAbsent)
	before := testutil.ToFloat64(counter)

	ObserveStorage("goal", "get", OutcomeAbsent, time.Now().Add(-5*time.Millisecond))

	require.Equal(t, before+1, testutil.ToFloat64(counter))

	var metric dto.Metric
	observer := storageLatency.WithLabelValues("goal", "get")
	require.NoError(t, observer.(interface{ Write(*dto.Metric) error }).Write(&metric))
	require.NotZero(t, metric.GetHistogram().GetSampleCount())
	require.GreaterOrEqual(t, metric.GetHistogram().GetSampleSum(), 0.005)
}

func TestRecordWrite(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	RecordWrite("workout", ts)
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastWriteGauge.WithLabelValues("workout")))

	RecordWrite("workout", time.Time{})
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastWriteGauge.WithLabelValues("workout")))
}
