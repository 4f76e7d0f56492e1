package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/0xsj/wikilink/internal/port/inbound/query"
)

// Handler holds the query handlers behind the JSON API endpoints.
type Handler struct {
	userInfo query.GetUserInfoHandler
	stats    query.GetWikiStatsHandler
	search   query.SearchArticlesHandler
	logger   log.Logger
}

// HandlerConfig holds the handlers for the API surface.
type HandlerConfig struct {
	GetUserInfoHandler    query.GetUserInfoHandler
	GetWikiStatsHandler   query.GetWikiStatsHandler
	SearchArticlesHandler query.SearchArticlesHandler
	Logger                log.Logger
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		userInfo: cfg.GetUserInfoHandler,
		stats:    cfg.GetWikiStatsHandler,
		search:   cfg.SearchArticlesHandler,
		logger:   cfg.Logger,
	}
}

// GetUserInfo handles GET /api/user.
func (h *Handler) GetUserInfo(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
		return
	}

	result, err := h.userInfo.Handle(c.Request.Context(), query.GetUserInfo{
		UserID: principal.UserID(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserInfoResponse(principal, result))
}

// GetWikiStats handles GET /api/stats.
func (h *Handler) GetWikiStats(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
		return
	}

	result, err := h.stats.Handle(c.Request.Context(), query.GetWikiStats{
		UserID: principal.UserID(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatsResponse(result))
}

// SearchArticles handles GET /api/search.
func (h *Handler) SearchArticles(c *gin.Context) {
	if _, err := principalFromContext(c); err != nil {
		c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
		return
	}

	q := strings.TrimSpace(c.Query("q"))

	result, err := h.search.Handle(c.Request.Context(), query.SearchArticles{
		Query:            q,
		Limit:            intQuery(c, "limit", 0),
		Namespace:        int32(intQuery(c, "namespace", 0)),
		ExcludeRedirects: boolQuery(c, "exclude_redirects", true),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSearchResponse(q, result))
}

// intQuery parses an integer query parameter. Non-numeric input falls back
// to the default rather than failing the request.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	return strings.EqualFold(raw, "true")
}
