package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() SubmitInput {
	return SubmitInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Salut",
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	rec, verr := ValidateSubmission(validInput())
	require.Nil(t, verr)
	require.Equal(t, "Ana", rec.Name)
	require.Equal(t, "ana@example.com", rec.Email)
	require.Equal(t, "Salut", rec.Message)
}

func TestValidateSubmission_TrimsAndLowercases(t *testing.T) {
	in := SubmitInput{
		Name:    "  Ana  ",
		Email:   " Ana@Example.COM ",
		Message: "\tSalut\n",
	}
	rec, verr := ValidateSubmission(in)
	require.Nil(t, verr)
	require.Equal(t, "Ana", rec.Name)
	require.Equal(t, "ana@example.com", rec.Email)
	require.Equal(t, "Salut", rec.Message)
}

func TestValidateSubmission_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		in    SubmitInput
		field string
	}{
		{"empty name", SubmitInput{Name: "", Email: "a@b.co", Message: "hi"}, "name"},
		{"whitespace name", SubmitInput{Name: "   ", Email: "a@b.co", Message: "hi"}, "name"},
		{"empty email", SubmitInput{Name: "Ana", Email: "", Message: "hi"}, "email"},
		{"whitespace email", SubmitInput{Name: "Ana", Email: " \t ", Message: "hi"}, "email"},
		{"empty message", SubmitInput{Name: "Ana", Email: "a@b.co", Message: ""}, "message"},
		{"whitespace message", SubmitInput{Name: "Ana", Email: "a@b.co", Message: "\n"}, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, verr := ValidateSubmission(tc.in)
			require.Nil(t, rec)
			require.NotNil(t, verr)
			require.Equal(t, ReasonMissingField, verr.Reason)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	for _, email := range []string{
		"plainaddress",
		"no-at.example.com",
		"no-tld@example",
		"spaces in@example.com",
		"trailing@example.",
		"@example.com",
	} {
		t.Run(email, func(t *testing.T) {
			in := validInput()
			in.Email = email
			_, verr := ValidateSubmission(in)
			require.NotNil(t, verr)
			require.Equal(t, ReasonInvalidEmail, verr.Reason)
		})
	}
}

// Email format is checked only after required-field presence passes: a
// missing name wins over a bad email.
func TestValidateSubmission_MissingBeforeFormat(t *testing.T) {
	in := SubmitInput{Name: "", Email: "not-an-email", Message: "hi"}
	_, verr := ValidateSubmission(in)
	require.NotNil(t, verr)
	require.Equal(t, ReasonMissingField, verr.Reason)
	require.Equal(t, "name", verr.Field)
}

func TestValidateSubmission_NameTooLong(t *testing.T) {
	in := validInput()
	in.Name = strings.Repeat("a", 101)
	_, verr := ValidateSubmission(in)
	require.NotNil(t, verr)
	require.Equal(t, ReasonFieldTooLong, verr.Reason)
	require.Equal(t, "name", verr.Field)
	require.Equal(t, 101, verr.Length)
}

func TestValidateSubmission_NameAtLimit(t *testing.T) {
	in := validInput()
	in.Name = strings.Repeat("a", 100)
	rec, verr := ValidateSubmission(in)
	require.Nil(t, verr)
	require.Len(t, rec.Name, 100)
}

func TestValidateSubmission_MessageTooLong(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("x", 2001)
	_, verr := ValidateSubmission(in)
	require.NotNil(t, verr)
	require.Equal(t, ReasonFieldTooLong, verr.Reason)
	require.Equal(t, "message", verr.Field)
	require.Equal(t, 2001, verr.Length)
}

func TestValidateSubmission_MessageAtLimit(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("x", 2000)
	_, verr := ValidateSubmission(in)
	require.Nil(t, verr)
}

func TestValidateSubmission_CarriesMetadata(t *testing.T) {
	in := validInput()
	in.ClientIP = "203.0.113.9"
	in.UserAgent = "curl/8.0"
	rec, verr := ValidateSubmission(in)
	require.Nil(t, verr)
	require.Equal(t, "203.0.113.9", rec.ClientIP)
	require.Equal(t, "curl/8.0", rec.UserAgent)
}
