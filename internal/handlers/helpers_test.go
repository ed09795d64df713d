package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_vocab_srs/internal/config"
	"go_vocab_srs/internal/handlers"
	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testServer はサービスをモックに差し替えたルーターです。
type testServer struct {
	router   http.Handler
	tenants  *mocks.TenantService
	decks    *mocks.DeckService
	cards    *mocks.FlashcardService
	reviews  *mocks.ReviewService
	tenantID uuid.UUID
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.Enabled = false
	cfg.App.ReviewRateLimit = 1000
	cfg.ApplyDefaults()
	for _, m := range mutate {
		m(cfg)
	}

	s := &testServer{
		tenants:  mocks.NewTenantService(t),
		decks:    mocks.NewDeckService(t),
		cards:    mocks.NewFlashcardService(t),
		reviews:  mocks.NewReviewService(t),
		tenantID: uuid.New(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = handlers.NewRouter(cfg, logger, handlers.Handlers{
		Tenant:    handlers.NewTenantHandler(s.tenants),
		Deck:      handlers.NewDeckHandler(s.decks),
		Flashcard: handlers.NewFlashcardHandler(s.cards),
		Review:    handlers.NewReviewHandler(s.reviews),
	}, s.tenants)
	return s
}

// do はテナントヘッダー付きでリクエストを送ります。body が string の場合はそのまま送ります。
func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return s.doAs(t, s.tenantID.String(), method, path, body)
}

func (s *testServer) doAs(t *testing.T, tenantHeader, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantHeader != "" {
		req.Header.Set("X-Tenant-ID", tenantHeader)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}
