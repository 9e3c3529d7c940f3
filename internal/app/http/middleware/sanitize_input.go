package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

const maxMultipartMemory = 32 << 20

// SanitizeFormMiddleware strips HTML from every form value on public POST
// routes using bluemonday. File parts are left alone; the handlers validate
// those themselves.
func SanitizeFormMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		// Parses both urlencoded and multipart bodies; later binds reuse the
		// parsed form, so sanitizing in place is enough.
		_ = c.Request.ParseMultipartForm(maxMultipartMemory)

		sanitizeValues(policy, c.Request.Form)
		sanitizeValues(policy, c.Request.PostForm)
		if c.Request.MultipartForm != nil {
			sanitizeValues(policy, c.Request.MultipartForm.Value)
		}

		c.Next()
	}
}

func sanitizeValues(policy *bluemonday.Policy, values map[string][]string) {
	for k, vals := range values {
		for i := range vals {
			vals[i] = policy.Sanitize(vals[i])
		}
		values[k] = vals
	}
}
