package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSRFToken(t *testing.T) {
	cookies := []*http.Cookie{
		{Name: "sessionid", Value: "abc"},
		{Name: "csrftoken", Value: "tok%3D%3D"},
		{Name: "csrftoken2", Value: "decoy"},
	}

	assert.Equal(t, "tok==", CSRFToken(cookies, "csrftoken"))
}

func TestCSRFTokenExactNameOnly(t *testing.T) {
	cookies := []*http.Cookie{{Name: "xcsrftoken", Value: "nope"}}
	assert.Equal(t, "", CSRFToken(cookies, "csrftoken"))
}

func TestCSRFTokenMissing(t *testing.T) {
	assert.Equal(t, "", CSRFToken(nil, "csrftoken"))
}

func TestCSRFTokenPlainValue(t *testing.T) {
	cookies := []*http.Cookie{{Name: "csrftoken", Value: "plaintoken"}}
	assert.Equal(t, "plaintoken", CSRFToken(cookies, "csrftoken"))
}
