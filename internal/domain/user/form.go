package user

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown form field")

// Field names as the form inputs send them.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldGender      = "gender"
	FieldAge         = "age"
	FieldCompanyName = "company.name"
)

func Fields() []string {
	return []string{FieldFirstName, FieldLastName, FieldEmail, FieldGender, FieldAge, FieldCompanyName}
}

// Form is a partial User draft. A nil field is absent.
//
// CompanyName is the literal "company.name" key written by the company input.
// It is stored flat and is never folded into Company, so editing it has no
// effect on the committed record. Company is only set when the form is
// populated from an existing User.
type Form struct {
	FirstName   *string  `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName    *string  `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Email       *string  `json:"email,omitempty" yaml:"email,omitempty"`
	Gender      *string  `json:"gender,omitempty" yaml:"gender,omitempty"`
	Age         *int     `json:"age,omitempty" yaml:"age,omitempty"`
	Company     *Company `json:"company,omitempty" yaml:"company,omitempty"`
	CompanyName *string  `json:"company.name,omitempty" yaml:"company.name,omitempty"`
}

// FormFrom copies every field of u into a fresh Form.
func FormFrom(u User) Form {
	company := u.Company

	return Form{
		FirstName: ptr(u.FirstName),
		LastName:  ptr(u.LastName),
		Email:     ptr(u.Email),
		Gender:    ptr(u.Gender),
		Age:       ptr(u.Age),
		Company:   &company,
	}
}

func (f Form) IsEmpty() bool {
	return f == Form{}
}

// Set replaces a single named field. Age is parsed from its text form; empty
// or non-numeric input is stored as 0.
func (f Form) Set(name, value string) (Form, error) {
	switch name {
	case FieldFirstName:
		f.FirstName = ptr(value)
	case FieldLastName:
		f.LastName = ptr(value)
	case FieldEmail:
		f.Email = ptr(value)
	case FieldGender:
		f.Gender = ptr(value)
	case FieldAge:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			n = 0
		}
		f.Age = ptr(n)
	case FieldCompanyName:
		f.CompanyName = ptr(value)
	default:
		return f, ErrUnknownField
	}

	return f, nil
}

// Value returns the text an input named name displays. The company input
// reads the nested snapshot, not the flat key it writes.
func (f Form) Value(name string) string {
	switch name {
	case FieldFirstName:
		return deref(f.FirstName)
	case FieldLastName:
		return deref(f.LastName)
	case FieldEmail:
		return deref(f.Email)
	case FieldGender:
		return deref(f.Gender)
	case FieldAge:
		if f.Age == nil || *f.Age == 0 {
			return ""
		}
		return strconv.Itoa(*f.Age)
	case FieldCompanyName:
		if f.Company == nil {
			return ""
		}
		return f.Company.Name
	}

	return ""
}

// ApplyTo merges the present fields over u. The flat CompanyName is ignored.
func (f Form) ApplyTo(u User) User {
	if f.FirstName != nil {
		u.FirstName = *f.FirstName
	}
	if f.LastName != nil {
		u.LastName = *f.LastName
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
	if f.Gender != nil {
		u.Gender = *f.Gender
	}
	if f.Age != nil {
		u.Age = *f.Age
	}
	if f.Company != nil {
		u.Company = *f.Company
	}

	return u
}

func ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
