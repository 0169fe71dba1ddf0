package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/renobook/internal/store"
)

// ErrFeaturesInvalid 表示 features 载荷不是合法的条目数组。
var ErrFeaturesInvalid = errors.New("features payload is not a valid entry list")

// ParseFeatures decodes the externally-edited features payload: a JSON array
// of {icon, title, description} records. The caller keeps the prior value on
// error instead of silently dropping the input — a parse failure is reported,
// never fatal.
func ParseFeatures(raw string) ([]store.FeatureItem, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []store.FeatureItem{}, nil
	}

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.DisallowUnknownFields()

	var items []store.FeatureItem
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeaturesInvalid, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrFeaturesInvalid)
	}
	if items == nil {
		items = []store.FeatureItem{}
	}

	return items, nil
}
