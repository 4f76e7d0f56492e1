package error

import (
	"github.com/0xsj/overwatch-pkg/errors"
)

// Domain error codes
const (
	// Identity errors
	CodeNoLinkedIdentity      errors.Code = "NO_LINKED_IDENTITY"
	CodeIncompleteCredentials errors.Code = "INCOMPLETE_CREDENTIALS"
	CodeProviderInvalid       errors.Code = "PROVIDER_INVALID"
	CodeUserIDRequired        errors.Code = "USER_ID_REQUIRED"

	// Wiki API errors
	CodeWikiRemote errors.Code = "WIKI_REMOTE_ERROR"

	// Replica errors
	CodeReplicaUnavailable  errors.Code = "REPLICA_UNAVAILABLE"
	CodeSearchQueryRequired errors.Code = "SEARCH_QUERY_REQUIRED"
)

// Identity errors
var (
	ErrNoLinkedIdentity = errors.New(errors.KindNotFound, CodeNoLinkedIdentity, "no mediawiki identity linked to this account")

	ErrIncompleteCredentials = errors.New(errors.KindValidation, CodeIncompleteCredentials, "linked identity is missing OAuth access credentials")

	ErrProviderInvalid = errors.New(errors.KindValidation, CodeProviderInvalid, "provider is not supported")

	ErrUserIDRequired = errors.New(errors.KindValidation, CodeUserIDRequired, "user ID is required")
)

// Wiki API errors
var (
	ErrWikiRemote = errors.New(errors.KindDomain, CodeWikiRemote, "wiki API request failed")
)

// Replica errors
var (
	// ErrReplicaUnavailable means the deployment has no replica database
	// configured. Expected in local setups, not an operational failure.
	ErrReplicaUnavailable = errors.New(errors.KindDomain, CodeReplicaUnavailable, "wiki replica database is not available")

	ErrSearchQueryRequired = errors.New(errors.KindValidation, CodeSearchQueryRequired, "search query is required")
)
