package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("built-in roles must be valid")
	}
	for _, r := range []Role{"", "superadmin", "Admin", "USER"} {
		if r.Valid() {
			t.Fatalf("role %q should be invalid", r)
		}
	}
}

func TestRole_Satisfies(t *testing.T) {
	cases := []struct {
		caller   Role
		required Role
		want     bool
	}{
		{RoleUser, RoleUser, true},
		{RoleAdmin, RoleUser, true}, // admin is a strict superset
		{RoleAdmin, RoleAdmin, true},
		{RoleUser, RoleAdmin, false},
		{Role(""), RoleUser, false},
		{Role("superadmin"), RoleUser, false},
	}
	for _, tc := range cases {
		if got := tc.caller.Satisfies(tc.required); got != tc.want {
			t.Fatalf("%q.Satisfies(%q) = %v, want %v", tc.caller, tc.required, got, tc.want)
		}
	}
}
