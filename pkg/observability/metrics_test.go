package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectorIsIndependentPerCall(t *testing.T) {
	first := NewCollector("alpha")
	second := NewCollector("beta")

	require.NotSame(t, first, second)

	first.ProjectsCreated.Inc()
	first.ProjectsCreated.Inc()
	second.ProjectsCreated.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(first.ProjectsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(second.ProjectsCreated))
}

func TestCollectorHandlerUsesNamespace(t *testing.T) {
	collector := NewCollector("kaku")
	collector.NotesCreated.Inc()

	recorder := httptest.NewRecorder()
	collector.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "kaku_notes_created_total 1")
}
