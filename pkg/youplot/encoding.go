package youplot

import (
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// decode converts input from the named encoding to UTF-8. An empty name
// leaves the input as is.
func decode(input []byte, name string) (string, error) {
	if name == "" {
		return string(input), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	out, err := enc.NewDecoder().Bytes(input)
	if err != nil {
		return "", fmt.Errorf("failed to decode input as %s: %w", name, err)
	}
	return string(out), nil
}
