package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/grantpilot/sectiond/internal/repository"
	"github.com/grantpilot/sectiond/internal/service"
)

// stubClient is a canned completion client for handler tests.
type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestHandler(t *testing.T, client *stubClient) (*Handler, repository.Store) {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return NewHandler(service.New(store, client, service.DefaultTopK)), store
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t, &stubClient{text: "x"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
