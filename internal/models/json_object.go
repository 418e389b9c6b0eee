package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONObject is a free-form object column. It is stored as text so the sqlite test schema and
// postgres read it the same way; an empty object is written as NULL.
type JSONObject map[string]interface{}

func (o JSONObject) Value() (driver.Value, error) {
	if len(o) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]interface{}(o))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (o *JSONObject) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONObject", value)
	}

	if len(raw) == 0 {
		*o = nil
		return nil
	}
	return json.Unmarshal(raw, (*map[string]interface{})(o))
}

// String returns the value under key, or "" when it is missing or not a string.
func (o JSONObject) String(key string) string {
	s, _ := o[key].(string)
	return s
}
