package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IDList is a set of row ids stored as a JSON array in a text column.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	data, err := json.Marshal([]uint(l))
	if err != nil {
		return nil, fmt.Errorf("idlist: marshal: %w", err)
	}
	return string(data), nil
}

func (l *IDList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("idlist: unsupported source type %T", src)
	}
	return json.Unmarshal(data, (*[]uint)(l))
}

func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
