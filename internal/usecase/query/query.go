// Package query evaluates JSONPath expressions against produced level
// files.
package query

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

// Apply evaluates a JSONPath expression against a JSON document.
func Apply(doc []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty jsonpath expression")
	}

	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}

	val, err := jsonpath.Get(expr, parsed)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", expr, err)
	}
	return val, nil
}

// File loads a level file and evaluates the expression against it.
func File(path, expr string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Apply(b, expr)
}

// Render formats a query result as indented JSON.
func Render(val any) (string, error) {
	b, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
