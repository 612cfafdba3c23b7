package breach

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// suffixFor возвращает хвост SHA-1 дайджеста пароля (после 5-символьного префикса).
func suffixFor(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[5:]
}

func TestCheck_Found(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		// пара чужих суффиксов и искомый с количеством
		_, _ = w.Write([]byte("0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n" +
			suffixFor("password") + ":3861493\r\n" +
			"011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	found, count, err := c.Check(context.Background(), "password")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3861493, count)

	// наружу ушёл только 5-символьный префикс
	sum := sha1.Sum([]byte("password"))
	prefix := strings.ToUpper(hex.EncodeToString(sum[:]))[:5]
	assert.Equal(t, "/"+prefix, gotPath)
}

func TestCheck_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	found, count, err := c.Check(context.Background(), "xK9#mQ2$vL5@pR8!")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, count)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.Check(context.Background(), "password")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestCheck_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение будет отклонено

	c := NewClient(srv.URL)
	_, _, err := c.Check(context.Background(), "password")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestCheck_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	_, _, err := c.Check(ctx, "password")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultAPIURL, c.baseURL)
}
