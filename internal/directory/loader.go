package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/office-hours-service/internal/domain"
)

// Load reads the JSON directory file and builds the index. Any failure is
// fatal to startup: the service must not serve with a missing or corrupt
// directory.
func Load(path string, logger *zap.Logger) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}

	var people []domain.Person
	if err := json.Unmarshal(raw, &people); err != nil {
		return nil, fmt.Errorf("parse directory file %s: %w", path, err)
	}
	if len(people) == 0 {
		return nil, fmt.Errorf("directory file %s contains no records", path)
	}

	idx, err := NewIndex(people)
	if err != nil {
		return nil, err
	}

	logger.Info("directory loaded",
		zap.String("path", path),
		zap.Int("people", idx.Len()),
		zap.Int("departments", len(idx.Departments())))
	return idx, nil
}
