package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"social-analytics-srv/pkg/discord"
	pkgErrors "social-analytics-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data as the JSON body with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes err as {"error": message}. HTTPError and ValidationError carry their own
// status and message; anything else becomes a 500 with DefaultErrorMessage.
// Server-side failures are reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			report(c.Request.Context(), d, c.Request.URL.Path, err)
		}
		c.JSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Message})
		return
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResp{Error: validationErr.Message})
		return
	}

	report(c.Request.Context(), d, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// PanicError answers a recovered panic with a generic 500.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	report(c.Request.Context(), d, c.Request.URL.Path, fmt.Errorf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Attachment writes body as a downloadable file.
func Attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, body)
}

func report(ctx context.Context, d discord.IDiscord, path string, err error) {
	if d == nil {
		return
	}
	go func() {
		_ = d.SendError(context.WithoutCancel(ctx), "Request failed", path, err)
	}()
}
