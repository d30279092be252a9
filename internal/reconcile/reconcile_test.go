package reconcile

import (
	"testing"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() State {
	return Load(New(LengthID), []user.User{
		{ID: 1, FirstName: "A", LastName: "One", Email: "a@x.io", Gender: "female", Age: 28, Company: user.Company{Name: "Alpha"}},
		{ID: 2, FirstName: "B", LastName: "Two", Email: "b@x.io", Gender: "male", Age: 35, Company: user.Company{Name: "Beta"}},
	})
}

func ids(s State) []int {
	out := make([]int, 0, len(s.Users))
	for _, u := range s.Users {
		out = append(out, u.ID)
	}
	return out
}

// assertSameState compares everything but the policy func, which DeepEqual
// never treats as equal.
func assertSameState(t *testing.T, want, got State) {
	t.Helper()

	assert.Equal(t, want.Users, got.Users)
	assert.Equal(t, want.Form, got.Form)
	assert.Equal(t, want.EditingID, got.EditingID)
}

func mustSet(t *testing.T, s State, name, value string) State {
	t.Helper()

	next, err := SetField(s, name, value)
	require.NoError(t, err)
	return next
}

func TestCreateOnlyIDsStrictlyIncrease(t *testing.T) {
	for _, policy := range []IDPolicy{LengthID, MonotonicID} {
		s := seeded()
		s.IDPolicy = policy

		for i := 0; i < 5; i++ {
			s = mustSet(t, s, user.FieldFirstName, "n")
			s, _ = Create(s)
		}

		got := ids(s)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1])
		}
	}
}

func TestDeleteThenCreateCollidesWithLengthID(t *testing.T) {
	s := seeded()

	s = Delete(s, 2)
	s = mustSet(t, s, user.FieldFirstName, "C")
	s, created := Create(s)

	assert.Equal(t, 2, created.ID)
	assert.Equal(t, []int{1, 2}, ids(s))

	s = seeded()
	s = Delete(s, 1)
	s = mustSet(t, s, user.FieldFirstName, "C")
	s, created = Create(s)

	assert.Equal(t, 2, created.ID)
	assert.Equal(t, []int{2, 2}, ids(s), "length-based id reuses a live id")
	assert.Equal(t, "C", s.Users[1].FirstName)
}

func TestDeleteThenCreateScenarioFromSingleRow(t *testing.T) {
	s := Load(New(nil), []user.User{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}})

	s = Delete(s, 1)
	require.Equal(t, []int{2}, ids(s))

	s = mustSet(t, s, user.FieldFirstName, "C")
	s, created := Create(s)

	// length is 1 so the counter yields 2, reusing the surviving row's id
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, "C", created.FirstName)
}

func TestMonotonicIDNeverReuses(t *testing.T) {
	s := seeded()
	s.IDPolicy = MonotonicID

	s = Delete(s, 2)
	s, created := Create(s)
	assert.Equal(t, 3, created.ID)

	s = Delete(s, 3)
	s, created = Create(s)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, []int{1, 4}, ids(s))
}

func TestCreateCopiesFormAndResets(t *testing.T) {
	s := seeded()
	s = mustSet(t, s, user.FieldFirstName, "C")
	s = mustSet(t, s, user.FieldAge, "19")
	s = mustSet(t, s, user.FieldCompanyName, "Gamma")

	s, created := Create(s)

	assert.Equal(t, user.User{ID: 3, FirstName: "C", Age: 19}, created)
	assert.Equal(t, created, s.Users[2])
	assert.True(t, s.Form.IsEmpty())
	assert.Nil(t, s.EditingID)
	assert.Equal(t, ModeCreate, s.Mode())
}

func TestCreateWithEmptyForm(t *testing.T) {
	s, created := Create(seeded())

	assert.Equal(t, user.User{ID: 3}, created)
	assert.Len(t, s.Users, 3)
}

func TestEditThenUpdateMergesPresentFields(t *testing.T) {
	s := seeded()
	u2, ok := Find(s, 2)
	require.True(t, ok)

	s = Edit(s, u2)
	require.NotNil(t, s.EditingID)
	assert.Equal(t, 2, *s.EditingID)
	assert.Equal(t, user.FormFrom(u2), s.Form)
	assert.Equal(t, ModeEdit, s.Mode())

	s = mustSet(t, s, user.FieldFirstName, "Z")
	s, err := Update(s)
	require.NoError(t, err)

	want := u2
	want.FirstName = "Z"
	assert.Equal(t, want, s.Users[1])
	assert.Equal(t, []int{1, 2}, ids(s))
	assert.True(t, s.Form.IsEmpty())
	assert.Nil(t, s.EditingID)
}

func TestUpdatePreservesOrderAndCount(t *testing.T) {
	s := seeded()
	s, _ = Create(mustSet(t, s, user.FieldFirstName, "C"))
	before := ids(s)

	u1, _ := Find(s, 1)
	s = Edit(s, u1)
	s = mustSet(t, s, user.FieldLastName, "Changed")
	s, err := Update(s)
	require.NoError(t, err)

	assert.Equal(t, before, ids(s))
	assert.Equal(t, "Changed", s.Users[0].LastName)
}

func TestUpdateIgnoresFlatCompanyName(t *testing.T) {
	s := seeded()
	u1, _ := Find(s, 1)

	s = Edit(s, u1)
	s = mustSet(t, s, user.FieldCompanyName, "Renamed")
	s, err := Update(s)
	require.NoError(t, err)

	// the company input writes a flat key that never reaches the nested record
	assert.Equal(t, "Alpha", s.Users[0].Company.Name)
}

func TestUpdateRequiresEditTarget(t *testing.T) {
	s := mustSet(t, seeded(), user.FieldFirstName, "Z")

	next, err := Update(s)
	assert.ErrorIs(t, err, ErrNotEditing)
	assertSameState(t, s, next)
}

func TestUpdateAfterTargetDeleted(t *testing.T) {
	s := seeded()
	u2, _ := Find(s, 2)

	s = Edit(s, u2)
	s = Delete(s, 2)
	require.NotNil(t, s.EditingID, "delete does not leave edit mode")

	s = mustSet(t, s, user.FieldFirstName, "Z")
	s, err := Update(s)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, ids(s))
	assert.Equal(t, "A", s.Users[0].FirstName)
	assert.Nil(t, s.EditingID)
	assert.True(t, s.Form.IsEmpty())
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s := seeded()

	assertSameState(t, s, Delete(s, 99))
}

func TestDeletePreservesOrder(t *testing.T) {
	s := seeded()
	s, _ = Create(s)

	s = Delete(s, 2)
	assert.Equal(t, []int{1, 3}, ids(s))
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s := seeded()
	snapshot := ids(s)

	_ = Delete(s, 1)
	_, _ = Create(s)
	u1, _ := Find(s, 1)
	edited := mustSet(t, Edit(s, u1), user.FieldFirstName, "Q")
	_, _ = Update(edited)

	assert.Equal(t, snapshot, ids(s))
	assert.Equal(t, "A", s.Users[0].FirstName)
}

func TestSubmitDispatchesOnMode(t *testing.T) {
	s := seeded()

	s, created := Submit(mustSet(t, s, user.FieldFirstName, "C"))
	require.NotNil(t, created)
	assert.Equal(t, 3, created.ID)

	u3, _ := Find(s, 3)
	s = mustSet(t, Edit(s, u3), user.FieldFirstName, "D")
	s, created = Submit(s)

	assert.Nil(t, created)
	assert.Len(t, s.Users, 3)
	assert.Equal(t, "D", s.Users[2].FirstName)
	assert.Equal(t, ModeCreate, s.Mode())
}

func TestCancelLeavesListUntouched(t *testing.T) {
	s := seeded()
	u1, _ := Find(s, 1)

	s = mustSet(t, Edit(s, u1), user.FieldFirstName, "Q")
	s = Cancel(s)

	assert.Nil(t, s.EditingID)
	assert.True(t, s.Form.IsEmpty())
	assert.Equal(t, "A", s.Users[0].FirstName)
}

func TestSetFieldUnknownName(t *testing.T) {
	s := seeded()

	next, err := SetField(s, "id", "7")
	assert.ErrorIs(t, err, user.ErrUnknownField)
	assertSameState(t, s, next)
}
