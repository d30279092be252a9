// Package reconcile holds the user list and form state and the pure
// transitions over it. Every function takes a State by value and returns a new
// one; slices are never shared between the input and output states.
package reconcile

import (
	"errors"
	"slices"

	"github.com/geocoder89/userdesk/internal/domain/user"
)

var ErrNotEditing = errors.New("no user is being edited")

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// IDPolicy picks the id of the next created user.
type IDPolicy func(s State) int

// LengthID numbers a new user len(list)+1. After a delete this can collide
// with an id still in the list.
func LengthID(s State) int {
	return len(s.Users) + 1
}

// MonotonicID never hands out an id lower than or equal to one already seen.
func MonotonicID(s State) int {
	return max(s.highWater, maxID(s.Users)) + 1
}

type State struct {
	Users     []user.User
	Form      user.Form
	EditingID *int
	IDPolicy  IDPolicy

	highWater int
}

func New(policy IDPolicy) State {
	if policy == nil {
		policy = LengthID
	}

	return State{IDPolicy: policy}
}

func (s State) Mode() Mode {
	if s.EditingID == nil {
		return ModeCreate
	}
	return ModeEdit
}

// Load replaces the list wholesale.
func Load(s State, users []user.User) State {
	s.Users = slices.Clone(users)
	s.highWater = max(s.highWater, maxID(s.Users))

	return s
}

func Find(s State, id int) (user.User, bool) {
	i := indexOf(s.Users, id)
	if i < 0 {
		return user.User{}, false
	}
	return s.Users[i], true
}

func SetField(s State, name, value string) (State, error) {
	f, err := s.Form.Set(name, value)
	if err != nil {
		return s, err
	}

	s.Form = f
	return s, nil
}

// Create appends a user built from the form and clears the form.
func Create(s State) (State, user.User) {
	policy := s.IDPolicy
	if policy == nil {
		policy = LengthID
	}

	created := s.Form.ApplyTo(user.User{})
	created.ID = policy(s)

	s.Users = append(slices.Clone(s.Users), created)
	s.highWater = max(s.highWater, created.ID)
	s.Form = user.Form{}

	return s, created
}

// Edit targets u and copies it into the form.
func Edit(s State, u user.User) State {
	id := u.ID
	s.EditingID = &id
	s.Form = user.FormFrom(u)

	return s
}

// Update merges the form over the targeted row and returns to create mode.
// A target that is no longer in the list leaves the list untouched.
func Update(s State) (State, error) {
	if s.EditingID == nil {
		return s, ErrNotEditing
	}

	target := *s.EditingID
	users := slices.Clone(s.Users)

	for i := range users {
		if users[i].ID == target {
			users[i] = s.Form.ApplyTo(users[i])
		}
	}

	s.Users = users
	s.EditingID = nil
	s.Form = user.Form{}

	return s, nil
}

// Submit is the single Create-or-Update action.
func Submit(s State) (State, *user.User) {
	if s.Mode() == ModeEdit {
		next, _ := Update(s)
		return next, nil
	}

	next, created := Create(s)
	return next, &created
}

// Cancel leaves edit mode without committing.
func Cancel(s State) State {
	s.EditingID = nil
	s.Form = user.Form{}

	return s
}

// Delete drops every row with the given id; absent ids are a no-op.
func Delete(s State, id int) State {
	if indexOf(s.Users, id) < 0 {
		return s
	}

	s.Users = slices.DeleteFunc(slices.Clone(s.Users), func(u user.User) bool {
		return u.ID == id
	})

	return s
}

func indexOf(users []user.User, id int) int {
	return slices.IndexFunc(users, func(u user.User) bool {
		return u.ID == id
	})
}

func maxID(users []user.User) int {
	m := 0
	for _, u := range users {
		m = max(m, u.ID)
	}
	return m
}
