package models

import "testing"

func TestValidateWeightValue(t *testing.T) {
	cases := []struct {
		weight  float64
		wantErr bool
	}{
		{29.9, true},
		{30, false},
		{70, false},
		{500, false},
		{500.1, true},
	}

	for _, tc := range cases {
		err := ValidateWeightValue(tc.weight)
		if tc.wantErr && err == nil {
			t.Errorf("ValidateWeightValue(%v): expected error", tc.weight)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("ValidateWeightValue(%v): unexpected error %v", tc.weight, err)
		}
	}
}

func TestValidateWeightChange(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		next    float64
		wantErr bool
	}{
		{"no change", 70, 70, false},
		{"gain at limit", 70, 71, false},
		{"gain over limit", 70, 71.1, true},
		{"loss at limit", 70, 68, false},
		{"loss over limit", 70, 67.9, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWeightChange(tc.current, tc.next)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %v -> %v", tc.current, tc.next)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %v -> %v: %v", tc.current, tc.next, err)
			}
		})
	}
}
