package transformer

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrAdapterNotFound matches every AdapterNotFoundError through errors.Is.
var ErrAdapterNotFound = errors.New("transformer: adapter not found")

// AdapterNotFoundError reports a Transform or Get against an unknown name.
type AdapterNotFoundError struct {
	Name string
}

func (e *AdapterNotFoundError) Error() string {
	return fmt.Sprintf("transformer: adapter %q not found", e.Name)
}

// Is lets errors.Is(err, ErrAdapterNotFound) succeed.
func (e *AdapterNotFoundError) Is(target error) bool {
	return target == ErrAdapterNotFound
}

// IsAdapterNotFound reports whether err carries an AdapterNotFoundError and
// returns the requested name.
func IsAdapterNotFound(err error) (string, bool) {
	var notFound *AdapterNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Name, true
	}
	return "", false
}

func newAdapterNotFound(name string, registered []string) error {
	err := error(&AdapterNotFoundError{Name: name})
	if len(registered) == 0 {
		return errors.WithHint(err, "no adapters are registered")
	}
	return errors.WithHintf(err, "registered adapters: %s", joinNames(registered))
}
