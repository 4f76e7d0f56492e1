package model

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// WikiUserInfo is the normalized result of the remote userinfo query.
// Derived entirely from the live API call; never cached across requests.
type WikiUserInfo struct {
	id          int64
	name        string
	email       types.Optional[string]
	groups      []string
	rightsCount int
}

// NewWikiUserInfo creates a WikiUserInfo. A nil groups slice normalizes to
// empty; only the count of rights is carried, never the full list.
func NewWikiUserInfo(id int64, name string, email types.Optional[string], groups []string, rightsCount int) *WikiUserInfo {
	if groups == nil {
		groups = []string{}
	}
	return &WikiUserInfo{
		id:          id,
		name:        name,
		email:       email,
		groups:      groups,
		rightsCount: rightsCount,
	}
}

func (w *WikiUserInfo) ID() int64                     { return w.id }
func (w *WikiUserInfo) Name() string                  { return w.name }
func (w *WikiUserInfo) Email() types.Optional[string] { return w.email }
func (w *WikiUserInfo) Groups() []string              { return w.groups }
func (w *WikiUserInfo) RightsCount() int              { return w.rightsCount }
