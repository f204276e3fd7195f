package library

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gamelib/internal/httpx"
)

func newLibraryRouter(repo Repository, games GameChecker, events EventPublisher) chi.Router {
	handler := NewHTTPHandler(NewService(repo, games, events))
	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(httpx.ContextWithUser(r.Context(), testUserID))
}

func TestHTTPHandler_Upsert(t *testing.T) {
	t.Run("updates the status", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).
			Return(existingEntry(StatusWantToPlay, false), nil)
		repo.On("Update", mock.Anything, mock.Anything).
			Return(*existingEntry(StatusPlaying, false), nil)
		router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPut, "/users/user-1/games/1942", `{"status": "PLAYING"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no stored entry yields 204", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).Return(nil, nil)
		router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPut, "/users/user-1/games/1942", `{"status": "NONE"}`))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		router := newLibraryRouter(&MockRepository{}, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPut, "/users/user-1/games/1942", `{"status": "FINISHED"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown game yields 404", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).Return(nil, nil)
		games := &MockGameChecker{}
		games.On("FindByID", mock.Anything, testGameID).Return(nil, nil)
		router := newLibraryRouter(repo, games, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodPut, "/users/user-1/games/1942", `{"status": "PLAYING"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_OwnershipCheck(t *testing.T) {
	// Requests for another user's library are rejected before any
	// service call.
	repo := &MockRepository{}
	router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/user-2/games"},
		{http.MethodGet, "/users/user-2/games/1942"},
		{http.MethodPut, "/users/user-2/games/1942"},
		{http.MethodDelete, "/users/user-2/games/1942"},
		{http.MethodPost, "/users/user-2/games/1942/favorite"},
		{http.MethodDelete, "/users/user-2/games/1942/favorite"},
		{http.MethodGet, "/users/user-2/favorites"},
	}
	for _, target := range targets {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(target.method, target.path, ""))
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", target.method, target.path)
	}
	repo.AssertNotCalled(t, "FindByUserAndGame", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("absent entry yields 404", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).Return(nil, nil)
		router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/users/user-1/games/1942", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid game id", func(t *testing.T) {
		router := newLibraryRouter(&MockRepository{}, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/users/user-1/games/abc", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Favorite(t *testing.T) {
	repo := &MockRepository{}
	repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).
		Return(existingEntry(StatusPlaying, false), nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(*existingEntry(StatusPlaying, true), nil)
	events := &MockEventPublisher{}
	events.On("PublishFavorite", mock.Anything, mock.Anything).Return(nil)
	router := newLibraryRouter(repo, &MockGameChecker{}, events)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/users/user-1/games/1942/favorite", ""))

	require.Equal(t, http.StatusOK, w.Code)
	events.AssertExpectations(t)
}

func TestHTTPHandler_Unfavorite(t *testing.T) {
	t.Run("success yields 204", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).
			Return(existingEntry(StatusPlaying, true), nil)
		repo.On("Update", mock.Anything, mock.Anything).
			Return(*existingEntry(StatusPlaying, false), nil)
		events := &MockEventPublisher{}
		events.On("PublishFavorite", mock.Anything, mock.Anything).Return(nil)
		router := newLibraryRouter(repo, &MockGameChecker{}, events)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/users/user-1/games/1942/favorite", ""))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("absent entry yields 404", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("FindByUserAndGame", mock.Anything, testUserID, testGameID).Return(nil, nil)
		router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodDelete, "/users/user-1/games/1942/favorite", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Favorites(t *testing.T) {
	repo := &MockRepository{}
	repo.On("FindFavorites", mock.Anything, testUserID, 20, 0).
		Return([]Entry{}, int64(0), nil)
	router := newLibraryRouter(repo, &MockGameChecker{}, &MockEventPublisher{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/users/user-1/favorites", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
