package task

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Pretty renders v as indented JSON with object keys sorted, the format the
// CLI has always printed task listings in.
func Pretty(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("task: failed to encode output: %w", err)
	}

	return gjson.GetBytes(data, `@pretty:{"sortKeys":true,"indent":"    "}`).String(), nil
}
