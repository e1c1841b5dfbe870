package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The list types below are stored in jsonb columns (or produced by json_agg
// in read queries) and implement sql.Scanner and driver.Valuer so that they
// can be passed to database/sql directly.
type (
	StringList  []string
	IDList      []string
	Experiences []Experience
	Educations  []Education
	Projects    []Project
	Comments    []Comment
)

func (l StringList) Value() (driver.Value, error)  { return jsonValue(l) }
func (l IDList) Value() (driver.Value, error)      { return jsonValue(l) }
func (l Experiences) Value() (driver.Value, error) { return jsonValue(l) }
func (l Educations) Value() (driver.Value, error)  { return jsonValue(l) }
func (l Projects) Value() (driver.Value, error)    { return jsonValue(l) }
func (l Comments) Value() (driver.Value, error)    { return jsonValue(l) }

func (l *StringList) Scan(src any) error  { return jsonScan(src, l) }
func (l *IDList) Scan(src any) error      { return jsonScan(src, l) }
func (l *Experiences) Scan(src any) error { return jsonScan(src, l) }
func (l *Educations) Scan(src any) error  { return jsonScan(src, l) }
func (l *Projects) Scan(src any) error    { return jsonScan(src, l) }
func (l *Comments) Scan(src any) error    { return jsonScan(src, l) }

// jsonValue encodes a slice as JSON. A nil slice is stored as an empty array
// so that columns never hold JSON null.
func jsonValue[T any](list []T) (driver.Value, error) {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("error encoding json column: %w", err)
	}
	return string(b), nil
}

func jsonScan[T any](src any, dst *T) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column source type %T", src)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("error decoding json column: %w", err)
	}
	return nil
}
