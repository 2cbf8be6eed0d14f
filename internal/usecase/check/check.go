// Package check verifies that an existing level file still satisfies the
// structural invariants the converter guarantees.
package check

import (
	"encoding/json"
	"os"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

// File loads a level JSON file and runs every structural check against it.
func File(path string) ([]domain.CheckResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "check.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var lvl domain.Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, &domain.OpError{
			Op:   "check.unmarshal",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	return domain.ValidateLevel(lvl), nil
}
