package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"

	domainerror "github.com/0xsj/wikilink/internal/domain/error"
)

// respondError maps domain failures to HTTP status codes. Every failure
// produces a well-formed {"error": ...} body; nothing escapes unhandled.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domainerror.ErrSearchQueryRequired):
		status = http.StatusBadRequest
	case errors.Is(err, domainerror.ErrIncompleteCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, domainerror.ErrNoLinkedIdentity):
		status = http.StatusNotFound
	case errors.Is(err, domainerror.ErrReplicaUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			log.String("path", c.Request.URL.Path),
			log.String("error", err.Error()),
		)
	}

	c.JSON(status, errorBody(err.Error()))
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}
