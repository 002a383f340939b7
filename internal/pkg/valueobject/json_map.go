// Package valueobject holds small value types shared by several modules.
package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a free-form JSON object stored in a jsonb column.
// A nil map is written as {} and NULL is read back as an empty map.
// @swaggertype object
type JSONMap map[string]any

func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONMap) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*j = JSONMap{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case map[string]any:
		*j = v
		return nil
	default:
		return fmt.Errorf("valueobject: cannot scan %T into JSONMap", src)
	}

	m := JSONMap{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("valueobject: decode JSONMap: %w", err)
	}
	*j = m
	return nil
}
