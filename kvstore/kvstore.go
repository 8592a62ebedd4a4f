// Package kvstore is the persistence boundary of the application: a
// flat key-value space holding the session token, the serialized user
// and the per-user carts. It is the server-side stand-in for browser
// local storage, so reads never fail loudly — a missing or unreadable
// value is reported as ErrNotFound and callers decide what "absent"
// means for them.
package kvstore

import "errors"

var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
