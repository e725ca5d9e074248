// Package formats groups the bundled parse node factories. Each subpackage
// decodes one wire format into a parsenode tree and exposes a factory that
// plugs into serialization.ParseNodeFactoryRegistry.
package formats

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ReadPayload drains content and rejects nil readers and blank payloads.
// name prefixes error messages.
func ReadPayload(name string, content io.Reader) ([]byte, error) {
	if content == nil {
		return nil, &serialization.ArgumentError{Name: "content", Reason: "is required"}
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("%s: read payload: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: empty payload", name)
	}
	return data, nil
}
