package user

import (
	"errors"
	"testing"
)

func sampleUser() User {
	return User{
		ID:        2,
		FirstName: "Michael",
		LastName:  "Williams",
		Email:     "michael.williams@x.dummyjson.com",
		Gender:    "male",
		Age:       35,
		Company:   Company{Name: "Spinka - Dickinson"},
	}
}

func TestFormSet(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		check   func(Form) bool
		wantErr error
	}{
		{
			name:  "first name",
			field: FieldFirstName,
			value: "Z",
			check: func(f Form) bool { return f.FirstName != nil && *f.FirstName == "Z" },
		},
		{
			name:  "age parsed",
			field: FieldAge,
			value: "41",
			check: func(f Form) bool { return f.Age != nil && *f.Age == 41 },
		},
		{
			name:  "age empty is present zero",
			field: FieldAge,
			value: "",
			check: func(f Form) bool { return f.Age != nil && *f.Age == 0 },
		},
		{
			name:  "company name stays flat",
			field: FieldCompanyName,
			value: "Acme",
			check: func(f Form) bool { return f.CompanyName != nil && *f.CompanyName == "Acme" && f.Company == nil },
		},
		{
			name:    "unknown field",
			field:   "password",
			value:   "x",
			check:   func(f Form) bool { return f.IsEmpty() },
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, err := Form{}.Set(tt.field, tt.value)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v, want %v", err, tt.wantErr)
			}
			if !tt.check(got) {
				t.Fatalf("unexpected form: %+v", got)
			}
		})
	}
}

func TestFormSetReplacesPriorValue(t *testing.T) {
	f, _ := Form{}.Set(FieldEmail, "a@b.c")
	f, _ = f.Set(FieldEmail, "d@e.f")

	if got := f.Value(FieldEmail); got != "d@e.f" {
		t.Fatalf("got %q, want %q", got, "d@e.f")
	}
}

func TestFormFromRoundTripsThroughApply(t *testing.T) {
	u := sampleUser()

	got := FormFrom(u).ApplyTo(User{ID: u.ID})
	if got != u {
		t.Fatalf("got %+v, want %+v", got, u)
	}
}

func TestFormApplyToIgnoresFlatCompanyName(t *testing.T) {
	u := sampleUser()

	f, _ := FormFrom(u).Set(FieldCompanyName, "Renamed Inc")
	got := f.ApplyTo(u)

	if got.Company.Name != "Spinka - Dickinson" {
		t.Fatalf("company name merged: got %q", got.Company.Name)
	}
}

func TestFormValueReadsCompanySnapshot(t *testing.T) {
	f, _ := FormFrom(sampleUser()).Set(FieldCompanyName, "Renamed Inc")

	if got := f.Value(FieldCompanyName); got != "Spinka - Dickinson" {
		t.Fatalf("got %q, want the snapshot name", got)
	}
	if got := (Form{}).Value(FieldAge); got != "" {
		t.Fatalf("absent age should render empty, got %q", got)
	}
}
