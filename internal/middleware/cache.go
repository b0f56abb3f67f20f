package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response meta travels on the gin context so handlers and services can
// annotate a response without threading a struct through every call.
const metaContextKey = "response_meta"

// WithResponseMeta seeds an empty meta map and, after the handler runs,
// fills in processing time unless the handler already reported its own.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(metaContextKey, map[string]interface{}{})
		c.Next()

		meta := metaFrom(c, true)
		if _, reported := meta["processing_time_ms"]; !reported {
			meta["processing_time_ms"] = time.Since(start).Milliseconds()
		}
	}
}

// SetCacheHit records whether the page came from the view-model cache.
func SetCacheHit(c *gin.Context, hit bool) {
	metaFrom(c, true)["cache_hit"] = hit
}

// SetDegraded flags a response assembled from fallback copy because the
// content backend was unreachable. A healthy response carries no flag.
func SetDegraded(c *gin.Context, degraded bool) {
	if degraded {
		metaFrom(c, true)["degraded"] = true
	}
}

// ExtractMeta returns the meta map for the current response, or nil when
// none was initialised.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	return metaFrom(c, false)
}

func metaFrom(c *gin.Context, create bool) map[string]interface{} {
	if c == nil {
		if create {
			return map[string]interface{}{}
		}
		return nil
	}
	if stored, exists := c.Get(metaContextKey); exists {
		if meta, ok := stored.(map[string]interface{}); ok {
			return meta
		}
	}
	if !create {
		return nil
	}
	meta := map[string]interface{}{}
	c.Set(metaContextKey, meta)
	return meta
}
