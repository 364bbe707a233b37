// Package transformer holds the adapter registry and the transform dispatch.
// Adapters are keyed by Name; registering a name that already exists replaces
// the previous adapter. Transform looks the adapter up and delegates, returning
// an AdapterNotFoundError when the name is unknown.
package transformer
