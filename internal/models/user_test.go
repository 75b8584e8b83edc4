package models

import "testing"

func validUser() User {
	return User{
		FirstName:   "Juan",
		LastName:    "Cruz",
		Email:       "juan@test.com",
		Course:      "BSCS",
		Height:      170,
		Weight:      70,
		Gender:      "Male",
		Age:         21,
		PhoneNumber: "+639171234567",
	}
}

func TestUserValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid", func(u *User) {}, false},
		{"missing first name", func(u *User) { u.FirstName = "" }, true},
		{"missing last name", func(u *User) { u.LastName = "" }, true},
		{"email without .com", func(u *User) { u.Email = "juan@test.org" }, true},
		{"email with spaces", func(u *User) { u.Email = "ju an@test.com" }, true},
		{"unknown course", func(u *User) { u.Course = "BSN" }, true},
		{"height too low", func(u *User) { u.Height = 99 }, true},
		{"height too high", func(u *User) { u.Height = 251 }, true},
		{"height at lower bound", func(u *User) { u.Height = 100 }, false},
		{"weight too low", func(u *User) { u.Weight = 29 }, true},
		{"weight too high", func(u *User) { u.Weight = 501 }, true},
		{"weight at upper bound", func(u *User) { u.Weight = 500 }, false},
		{"unknown gender", func(u *User) { u.Gender = "N/A" }, true},
		{"too young", func(u *User) { u.Age = 15 }, true},
		{"too old", func(u *User) { u.Age = 101 }, true},
		{"age at lower bound", func(u *User) { u.Age = 16 }, false},
		{"phone wrong prefix", func(u *User) { u.PhoneNumber = "+638171234567" }, true},
		{"phone too short", func(u *User) { u.PhoneNumber = "+63917123456" }, true},
		{"phone too long", func(u *User) { u.PhoneNumber = "+6391712345678" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(&u)
			err := u.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
