package graphql

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gqlug/internal/filter"
	"gqlug/internal/metrics"
)

// toWhereMap flattens a typed where input into the map form the filter
// package validates. The json tags on the input structs carry the wire
// names (_eq, _and, name_en, ...), so a marshal round-trip is exactly the
// flattening we need.
func toWhereMap(where any) (map[string]any, error) {
	if where == nil {
		return nil, nil
	}
	if v := reflect.ValueOf(where); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, nil
	}

	raw, err := json.Marshal(where)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten where input: %w", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("failed to flatten where input: %w", err)
	}
	return flat, nil
}

// parseWhere validates a typed where input against the entity descriptor and
// returns the filter expression, or nil when no filter was given. Rejections
// are counted so a misbehaving client shows up on the dashboard.
func parseWhere(where any, desc filter.Descriptor) (filter.Expr, error) {
	flat, err := toWhereMap(where)
	if err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, nil
	}

	expr, err := filter.Parse(flat, desc)
	if err != nil {
		metrics.FilterRejections.Inc()
		return nil, err
	}
	return expr, nil
}
