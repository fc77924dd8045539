package inputval

import (
	"testing"
)

type profileForm struct {
	Name           string `validate:"required,max=200" label:"profile.name"`
	Phone          string `validate:"required,phone" label:"profile.phone"`
	LinkedIn       string `validate:"omitempty,http_url,max=500" label:"profile.linkedIn"`
	GraduationYear string `validate:"omitempty,len=4,numeric" label:"profile.graduationYear"`
}

func TestValidate_Passes(t *testing.T) {
	res := Validate(profileForm{
		Name:           "Kim Ji-woo",
		Phone:          "010-1234-5678",
		LinkedIn:       "https://linkedin.com/in/jiwoo",
		GraduationYear: "2018",
	})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.All())
	}
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	res := Validate(profileForm{Name: "Kim Ji-woo", Phone: "01012345678"})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.All())
	}
}

func TestValidate_RequiredFieldsYieldCatalogKeys(t *testing.T) {
	res := Validate(profileForm{})
	if !res.HasErrors() {
		t.Fatal("empty form passed validation")
	}
	first := res.First()
	if first.RuleKey != "form.errRequired" {
		t.Errorf("RuleKey: got %q, want form.errRequired", first.RuleKey)
	}
	if first.LabelKey != "profile.name" {
		t.Errorf("LabelKey: got %q, want the field's label key", first.LabelKey)
	}
	if len(res.All()) < 2 {
		t.Errorf("expected failures for name and phone, got %v", res.All())
	}
}

func TestFieldError_MessageTranslates(t *testing.T) {
	// Stand-in translator: a tiny catalog keyed like the real one.
	msgs := map[string]string{
		"profile.name":     "이름",
		"form.errRequired": "%s을(를) 입력해 주세요.",
		"form.errTooLong":  "%s must be at most %s characters.",
		"error.generic":    "오류가 발생했습니다.",
	}
	tr := func(key string) string { return msgs[key] }

	got := FieldError{LabelKey: "profile.name", RuleKey: "form.errRequired"}.Message(tr)
	if got != "이름을(를) 입력해 주세요." {
		t.Errorf("required message: got %q", got)
	}

	got = FieldError{LabelKey: "profile.name", RuleKey: "form.errTooLong", Param: "200"}.Message(tr)
	if got != "이름 must be at most 200 characters." {
		t.Errorf("max message: got %q", got)
	}

	// Failures without a field pass the rule key through untouched.
	got = FieldError{RuleKey: "error.generic"}.Message(tr)
	if got != "오류가 발생했습니다." {
		t.Errorf("generic message: got %q", got)
	}
}

func TestValidate_MaxCarriesParam(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	res := Validate(profileForm{Name: string(long), Phone: "010-1234-5678"})
	if !res.HasErrors() {
		t.Fatal("oversized name passed validation")
	}
	first := res.First()
	if first.RuleKey != "form.errTooLong" || first.Param != "200" {
		t.Errorf("got rule %q param %q, want form.errTooLong / 200", first.RuleKey, first.Param)
	}
}

func TestValidate_PhoneRule(t *testing.T) {
	bad := []string{"abc", "123", "0 1 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8", "010.1234.5678"}
	for _, phone := range bad {
		res := Validate(profileForm{Name: "x", Phone: phone})
		if !res.HasErrors() {
			t.Errorf("phone %q passed validation", phone)
		} else if res.First().RuleKey != "form.errPhone" {
			t.Errorf("phone %q: got rule %q, want form.errPhone", phone, res.First().RuleKey)
		}
	}

	good := []string{"010-1234-5678", "+82 10 1234 5678", "(02) 123-4567"}
	for _, phone := range good {
		res := Validate(profileForm{Name: "x", Phone: phone})
		if res.HasErrors() {
			t.Errorf("phone %q failed validation: %v", phone, res.All())
		}
	}
}

func TestValidate_GraduationYear(t *testing.T) {
	for _, bad := range []string{"18", "20185", "abcd"} {
		res := Validate(profileForm{Name: "x", Phone: "010-1234-5678", GraduationYear: bad})
		if !res.HasErrors() {
			t.Errorf("graduation year %q passed validation", bad)
		}
	}
}

func TestValidate_LinkedInMustBeURL(t *testing.T) {
	res := Validate(profileForm{Name: "x", Phone: "010-1234-5678", LinkedIn: "not a url"})
	if !res.HasErrors() {
		t.Fatal("bad LinkedIn URL passed validation")
	}
	if res.First().RuleKey != "form.errURL" {
		t.Errorf("got rule %q, want form.errURL", res.First().RuleKey)
	}
}
