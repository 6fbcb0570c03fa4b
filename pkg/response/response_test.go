package response

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "sitekit-api/pkg/errors"
)

type fakeDiscord struct {
	reports chan string
}

func newFakeDiscord() *fakeDiscord {
	return &fakeDiscord{reports: make(chan string, 8)}
}

func (f *fakeDiscord) SendMessage(context.Context, string) error { return nil }
func (f *fakeDiscord) Close() error                              { return nil }

func (f *fakeDiscord) ReportBug(_ context.Context, message string) error {
	f.reports <- message
	return nil
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/things", strings.NewReader(`{"name":"x"}`))
	return c, rec
}

func TestErrorWithMapMappedError(t *testing.T) {
	c, rec := newTestContext(t)
	d := newFakeDiscord()

	sentinel := errors.New("thing not found")
	eMap := ErrorMapping{sentinel: pkgErrors.NewNotFoundHTTPError("thing not found")}

	ErrorWithMap(c, sentinel, eMap, d)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	select {
	case msg := <-d.reports:
		t.Fatalf("mapped error should not be reported, got: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestErrorWithMapUnknownErrorReports(t *testing.T) {
	c, rec := newTestContext(t)
	d := newFakeDiscord()

	ErrorWithMap(c, errors.New("pq: connection refused"), ErrorMapping{}, d)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), DefaultErrorMessage)

	select {
	case msg := <-d.reports:
		assert.Contains(t, msg, "connection refused")
		assert.Contains(t, msg, "/api/v1/things")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a bug report for an unknown error")
	}
}

func TestErrorWithMapUnknownErrorNilDiscord(t *testing.T) {
	c, rec := newTestContext(t)

	require.NotPanics(t, func() {
		ErrorWithMap(c, errors.New("boom"), ErrorMapping{}, nil)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
