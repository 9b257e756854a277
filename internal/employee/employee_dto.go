package employee

import (
	"encoding/json"
	"reflect"
	"sort"

	"employee-management/internal/shared/apperror"
)

// EmployeeRequest is the body of create and full update. No field is
// required; missing fields take their zero value.
type EmployeeRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Age    int     `json:"age"`
	Salary float64 `json:"salary"`
}

type EmployeeResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Age    int     `json:"age"`
	Salary float64 `json:"salary"`
}

// EmployeePatch holds the fields a partial update may touch. A nil field is
// left unchanged.
type EmployeePatch struct {
	Name   *string
	Email  *string
	Age    *int
	Salary *float64
}

func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil && p.Salary == nil
}

// Apply overwrites the supplied fields of empl.
func (p EmployeePatch) Apply(empl *Employee) {
	if p.Name != nil {
		empl.Name = *p.Name
	}
	if p.Email != nil {
		empl.Email = *p.Email
	}
	if p.Age != nil {
		empl.Age = *p.Age
	}
	if p.Salary != nil {
		empl.Salary = *p.Salary
	}
}

// ParsePatch decodes a field-name to value object into an EmployeePatch.
// Unknown keys, nulls and values of the wrong JSON type are collected as
// sub-errors in key order and returned as one validation failure.
func ParsePatch(raw map[string]json.RawMessage) (EmployeePatch, error) {
	var patch EmployeePatch

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var subErrors []string
	for _, key := range keys {
		value := raw[key]

		var dst any
		var want reflect.Type
		switch key {
		case "name":
			patch.Name = new(string)
			dst, want = patch.Name, reflect.TypeOf("")
		case "email":
			patch.Email = new(string)
			dst, want = patch.Email, reflect.TypeOf("")
		case "age":
			patch.Age = new(int)
			dst, want = patch.Age, reflect.TypeOf(0)
		case "salary":
			patch.Salary = new(float64)
			dst, want = patch.Salary, reflect.TypeOf(float64(0))
		default:
			subErrors = append(subErrors, apperror.UnknownField(key))
			continue
		}

		if isNull(value) || json.Unmarshal(value, dst) != nil {
			subErrors = append(subErrors, apperror.TypeMismatch(key, want))
		}
	}

	if len(subErrors) > 0 {
		return EmployeePatch{}, apperror.Validation(subErrors...)
	}
	return patch, nil
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || string(value) == "null"
}
