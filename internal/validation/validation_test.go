package validation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/garnizeh/watchrepair/internal/validation"
)

func newValidator(t *testing.T) *validation.Validator {
	t.Helper()
	v, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}
	return v
}

func mentions(verrs []validation.Violation, field string) bool {
	for _, v := range verrs {
		if v.Field == field || strings.Contains(v.Message, field) || strings.Contains(v.Path, field) {
			return true
		}
	}
	return false
}

const validQuote = `{"name":"Ann","email":"ann@example.com","watchBrand":"Omega","watchType":"manual","issueDescription":"runs slow","urgency":"standard"}`

func TestQuote(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	cases := []struct {
		name      string
		body      string
		wantOK    bool
		wantField string
	}{
		{name: "Valid", body: validQuote, wantOK: true},
		{name: "ValidWithOptionals", body: `{"name":"Ann","email":"a@x.com","phone":"555","watchBrand":"Omega","watchModel":null,"watchType":"manual","issueDescription":"x","preferredService":"Vintage Restoration","urgency":"urgent","budget":"300"}`, wantOK: true},
		{name: "MissingIssueDescription", body: `{"name":"Ann","email":"a@x.com","watchBrand":"Omega","watchType":"manual","urgency":"standard"}`, wantField: "issueDescription"},
		{name: "WrongType", body: `{"name":"Ann","email":42,"watchBrand":"Omega","watchType":"manual","issueDescription":"x","urgency":"standard"}`, wantField: "email"},
		{name: "NullRequired", body: `{"name":null,"email":"a@x.com","watchBrand":"Omega","watchType":"manual","issueDescription":"x","urgency":"standard"}`, wantField: "name"},
		{name: "NotAnObject", body: `["a"]`},
		{name: "InvalidJSON", body: `{"name":`},
		{name: "Empty", body: ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, verrs, err := v.Quote(ctx, []byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantOK {
				if len(verrs) != 0 || q == nil {
					t.Fatalf("expected valid, got %#v", verrs)
				}
				return
			}
			if q != nil || len(verrs) == 0 {
				t.Fatalf("expected violations, got quote %#v", q)
			}
			if tc.wantField != "" && !mentions(verrs, tc.wantField) {
				t.Fatalf("expected a violation naming %q, got %#v", tc.wantField, verrs)
			}
		})
	}
}

func TestQuote_DropsUnknownAndServerFields(t *testing.T) {
	v := newValidator(t)
	body := `{"name":"Ann","email":"a@x.com","watchBrand":"Omega","watchType":"manual","issueDescription":"x","urgency":"standard","status":"completed","createdAt":"2001-01-01T00:00:00Z","id":99,"favouriteColour":"blue"}`

	q, verrs, err := v.Quote(context.Background(), []byte(body))
	if err != nil || len(verrs) != 0 {
		t.Fatalf("expected accepted payload, got %#v %v", verrs, err)
	}
	if q.Name != "Ann" || q.IssueDescription != "x" {
		t.Fatalf("recognised fields lost: %#v", q)
	}
}

func TestQuote_KeysMatchExactly(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()
	base := strings.TrimSuffix(validQuote, "}")

	cases := []struct {
		name  string
		extra string
	}{
		{name: "UpperCaseOptional", extra: `"PHONE":"555"`},
		{name: "UpperCaseRequired", extra: `"NAME":"Mallory"`},
		{name: "MixedCaseWrongType", extra: `"Phone":5`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, verrs, err := v.Quote(ctx, []byte(base+","+tc.extra+"}"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(verrs) != 0 {
				t.Fatalf("unknown key should be dropped, got violations %#v", verrs)
			}
			if q.Name != "Ann" || q.Phone != "" {
				t.Fatalf("case-folded key reached the record: %#v", q)
			}
		})
	}
}

func TestContact(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	c, verrs, err := v.Contact(ctx, []byte(`{"name":"A","email":"a@x.com","subject":"S","message":"M"}`))
	if err != nil || len(verrs) != 0 {
		t.Fatalf("expected valid contact, got %#v %v", verrs, err)
	}
	if c.Subject != "S" || c.Message != "M" {
		t.Fatalf("decoded contact wrong: %#v", c)
	}

	_, verrs, err = v.Contact(ctx, []byte(`{"name":"A","email":"a@x.com","subject":"S"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mentions(verrs, "message") {
		t.Fatalf("expected violation naming message, got %#v", verrs)
	}
}

func TestStatus(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	s, verrs, err := v.Status(ctx, []byte(`{"status":"reviewed"}`))
	if err != nil || len(verrs) != 0 || s != "reviewed" {
		t.Fatalf("expected reviewed, got %q %#v %v", s, verrs, err)
	}

	s, verrs, err = v.Status(ctx, []byte(`{"status":"reviewed","STATUS":5,"Status":"closed"}`))
	if err != nil || len(verrs) != 0 || s != "reviewed" {
		t.Fatalf("case variants must be ignored, got %q %#v %v", s, verrs, err)
	}

	for _, body := range []string{`{}`, `{"status":""}`, `{"status":3}`, `{"STATUS":"reviewed"}`} {
		if _, verrs, err := v.Status(ctx, []byte(body)); err != nil || len(verrs) == 0 {
			t.Fatalf("%s: expected violations, got %#v %v", body, verrs, err)
		}
	}
}
