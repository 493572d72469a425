package fileutil

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadJSONC reads a JSONC file holding an array and decodes its elements into T.
// Comments and trailing commas are allowed.
func LoadJSONC[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &items); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return items, nil
}
