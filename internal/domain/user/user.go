package user

import (
	"strconv"
	"strings"
)

type Company struct {
	Name string `json:"name" yaml:"name"`
}

// User mirrors one entry of the remote users payload. Fields the view does not
// display are dropped on decode.
type User struct {
	ID        int     `json:"id" yaml:"id"`
	FirstName string  `json:"firstName" yaml:"firstName"`
	LastName  string  `json:"lastName" yaml:"lastName"`
	Email     string  `json:"email" yaml:"email"`
	Gender    string  `json:"gender" yaml:"gender"`
	Age       int     `json:"age" yaml:"age"`
	Company   Company `json:"company" yaml:"company"`
}

// FullName is empty when both names are.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AgeText is the display form of Age, empty when no age was given.
func (u User) AgeText() string {
	if u.Age == 0 {
		return ""
	}
	return strconv.Itoa(u.Age)
}

// DetailPath is the per-row link target.
func (u User) DetailPath() string {
	return "/user/" + strconv.Itoa(u.ID)
}

// Envelope is the shape returned by the users endpoint.
type Envelope struct {
	Users []User `json:"users"`
}
