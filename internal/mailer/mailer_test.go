package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWelcome(t *testing.T) {
	var got sendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key", "Togetai <connect@togetai.com>")
	c.SetBaseURL(srv.URL)

	err := c.SendWelcome(context.Background(), "ana@x.com", "Ana")
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "Togetai <connect@togetai.com>", got.From)
	assert.Equal(t, []string{"ana@x.com"}, got.To)
	assert.Contains(t, got.Subject, "Welcome to Togetai")
	assert.True(t, strings.Contains(got.Text, "Hi Ana!"))
	assert.True(t, strings.Contains(got.HTML, "Hi Ana!"))
}

func TestSendWelcome_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key", "bad-from")
	c.SetBaseURL(srv.URL)

	err := c.SendWelcome(context.Background(), "ana@x.com", "Ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSend_NetworkError(t *testing.T) {
	c := NewClient("re_test_key", "Togetai <connect@togetai.com>")
	c.SetBaseURL("http://127.0.0.1:1")

	err := c.Send(context.Background(), "ana@x.com", "subject", "text", "<p>html</p>")
	require.Error(t, err)
}
