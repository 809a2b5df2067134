package dig_container

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/feeflow/apps/api/echo"
	"github.com/trezcool/feeflow/core"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("FEEFLOW_SERVER_DISABLE_REQUEST_LOGS", "true")

	c := New()
	err := c.Invoke(func(conf *core.Config, server *echoapi.Server) {
		assert.True(t, conf.TestMode)
		assert.Zero(t, conf.Store.Latency)

		req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var students []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
		assert.Len(t, students, 8, "the store is seeded")
	})
	require.NoError(t, err)
}
