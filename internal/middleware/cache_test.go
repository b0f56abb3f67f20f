package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithResponseMetaRecordsProcessingTime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	WithResponseMeta()(c)

	meta := ExtractMeta(c)
	require.NotNil(t, meta)
	assert.Contains(t, meta, "processing_time_ms")
}

func TestSetCacheHitAndDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SetCacheHit(c, true)
	SetDegraded(c, false)

	meta := ExtractMeta(c)
	require.NotNil(t, meta)
	assert.Equal(t, true, meta["cache_hit"])
	assert.NotContains(t, meta, "degraded")

	SetDegraded(c, true)
	assert.Equal(t, true, ExtractMeta(c)["degraded"])
}

func TestExtractMetaNilContext(t *testing.T) {
	assert.Nil(t, ExtractMeta(nil))
}
