package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Float принимает из JSON как число, так и строку с числом ("45.3842"):
// старые клиенты присылают координаты строками.
type Float float64

// UnmarshalJSON реализует json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	raw := unquoteNumber(data)
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*f = Float(v)
	return nil
}

// Int — целое с тем же поведением, что и Float.
type Int int

// UnmarshalJSON реализует json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	raw := unquoteNumber(data)
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		var n json.Number = json.Number(raw)
		f, ferr := n.Float64()
		if ferr != nil || f != float64(int(f)) {
			return fmt.Errorf("invalid integer %s: %w", data, err)
		}
		v = int(f)
	}
	*i = Int(v)
	return nil
}

func unquoteNumber(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return bytes.TrimSpace(data[1 : len(data)-1])
	}
	return data
}
