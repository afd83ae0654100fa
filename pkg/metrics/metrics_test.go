package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/component-base/metrics"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	kube := metrics.NewKubeRegistry()

	require.NoError(t, r.Register(kube))
	assert.Error(t, r.Register(kube), "collectors can only be registered once per registry")
}

func TestDump(t *testing.T) {
	r := NewRegistry()
	kube := metrics.NewKubeRegistry()
	require.NoError(t, r.Register(kube))

	r.Factory().RecordCreation("Pod", ResolutionRegistry)
	r.Factory().RecordCreation("Pod", ResolutionRegistry)
	r.Factory().RecordFailure(OpStub, ReasonFactory)
	r.Factory().ObserveOperation(OpCreate, 3*time.Millisecond)
	r.Discovery().RecordRefresh(StatusSuccess, 42)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, kube))
	out := buf.String()

	assert.Contains(t, out, `restclient_factory_creations_total{kind="Pod",resolution="registry"} 2`)
	assert.Contains(t, out, `restclient_factory_failures_total{operation="stub",reason="factory_error"} 1`)
	assert.Contains(t, out, `restclient_factory_operation_duration_seconds_count{operation="create"} 1`)
	assert.Contains(t, out, `restclient_discovery_refresh_total{status="success"} 1`)
	assert.Contains(t, out, `restclient_discovery_endpoints 42`)

	series, err := testutil.GatherAndCount(kube, "restclient_factory_creations_total", "restclient_factory_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestRecordRefreshError(t *testing.T) {
	r := NewRegistry()
	kube := metrics.NewKubeRegistry()
	require.NoError(t, r.Register(kube))

	r.Discovery().RecordRefresh(StatusSuccess, 10)
	r.Discovery().RecordRefresh(StatusError, 0)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, kube))
	assert.Contains(t, buf.String(), `restclient_discovery_refresh_total{status="error"} 1`)
	assert.Contains(t, buf.String(), `restclient_discovery_endpoints 10`)

	var nilMetrics *DiscoveryMetrics
	assert.NotPanics(t, func() { nilMetrics.RecordRefresh(StatusSuccess, 1) })
}

func TestUnregisteredMetricsRecordNothing(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		r.Factory().RecordCreation("Pod", ResolutionFallback)
		r.Factory().ObserveListItems("PodList", 3)
		r.Discovery().RecordRefresh(StatusPartial, 3)
	})
}

func TestGlobal(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	g := Global()
	assert.Same(t, g, Global())

	ResetGlobal()
	assert.NotSame(t, g, Global())
}
