package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON text column,
// keeping the sqlite schema flat while preserving element order.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}
