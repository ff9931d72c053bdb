package validator

import "testing"

type searchRequest struct {
	AreaCode string `validate:"required,areacode"`
}

type buyRequest struct {
	AreaCode string `validate:"omitempty,areacode"`
	AgentID  string `validate:"omitempty,max=64"`
}

func TestValidate_AreaCode(t *testing.T) {
	v := New()

	cases := []struct {
		code string
		ok   bool
	}{
		{"415", true},
		{"", false},
		{"41", false},
		{"4155", false},
		{"4a5", false},
	}
	for _, tc := range cases {
		err := v.Validate(&searchRequest{AreaCode: tc.code})
		if (err == nil) != tc.ok {
			t.Errorf("area code %q: err=%v, want ok=%v", tc.code, err, tc.ok)
		}
	}
}

func TestValidate_OptionalAreaCode(t *testing.T) {
	v := New()
	if err := v.Validate(&buyRequest{}); err != nil {
		t.Fatalf("empty optional area code should pass: %v", err)
	}
	if err := v.Validate(&buyRequest{AreaCode: "12"}); err == nil {
		t.Fatalf("expected short area code to fail")
	}
}
