package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommenterCap(t *testing.T) {
	router := newTestRouter(t) // MAX_COMMENTERS = 2
	cookies := loginAdmin(t, router)
	artwork := uploadArtwork(t, router, cookies, "popular")
	path := "/api/artworks/" + jsonID(artwork.ID) + "/comments"

	comment := func(email, text string) int {
		w := doJSON(router, "POST", path, map[string]string{"email": email, "text": text}, nil)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, comment("a@example.com", "nice"))
	assert.Equal(t, http.StatusOK, comment("b@example.com", "wow"))

	// Cap reached - a third distinct email is rejected with the fixed error
	w := doJSON(router, "POST", path, map[string]string{"email": "c@example.com", "text": "me too"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CommentersFullResponse.Error, resp.Error)

	// Existing commenters may always comment again
	assert.Equal(t, http.StatusOK, comment("a@example.com", "still nice"))
	assert.Equal(t, http.StatusOK, comment("b@example.com", "again"))

	// All accepted comments are on the artwork, distinct commenters stay capped
	w = do(router, "GET", "/api/artworks/"+jsonID(artwork.ID), "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info ArtworkInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Len(t, info.Comments, 4)
	assert.Equal(t, 2, info.Commenters)
}

func TestCommentValidation(t *testing.T) {
	router := newTestRouter(t)
	cookies := loginAdmin(t, router)
	artwork := uploadArtwork(t, router, cookies, "strict")
	path := "/api/artworks/" + jsonID(artwork.ID) + "/comments"

	w := doJSON(router, "POST", path, map[string]string{"email": "a@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing text")

	w = doJSON(router, "POST", path, map[string]string{"text": "anonymous"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing email")

	w = doJSON(router, "POST", "/api/artworks/424242/comments",
		map[string]string{"email": "a@example.com", "text": "ghost"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeIdempotentPerVisitor(t *testing.T) {
	router := newTestRouter(t)
	cookies := loginAdmin(t, router)
	artwork := uploadArtwork(t, router, cookies, "likeable")
	path := "/api/artworks/" + jsonID(artwork.ID) + "/like"

	// First like from a fresh visitor counts
	w := do(router, "POST", path, "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	visitor := sessionCookies(w)
	require.NotEmpty(t, visitor)
	var resp struct {
		Likes uint64 `json:"likes"`
		Liked bool   `json:"liked"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, uint64(1), resp.Likes)

	// Repeat from the same visitor is a no-op
	w = do(router, "POST", path, "", nil, visitor)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
	assert.Equal(t, uint64(1), resp.Likes)

	// A different visitor counts again
	w = do(router, "POST", path, "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, uint64(2), resp.Likes)
}
