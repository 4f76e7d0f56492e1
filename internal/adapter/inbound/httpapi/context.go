package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/wikilink/internal/domain/model"
)

const principalKey = "principal"

// ErrNoPrincipalInContext means a handler ran without the auth middleware.
var ErrNoPrincipalInContext = errors.New("no principal in context")

func setPrincipal(c *gin.Context, principal *model.Principal) {
	c.Set(principalKey, principal)
}

func principalFromContext(c *gin.Context) (*model.Principal, error) {
	val, ok := c.Get(principalKey)
	if !ok {
		return nil, ErrNoPrincipalInContext
	}

	principal, ok := val.(*model.Principal)
	if !ok {
		return nil, ErrNoPrincipalInContext
	}

	return principal, nil
}
