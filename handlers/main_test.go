package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"gallery/auth"
	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	config.MYSQL_DSN = ""
	config.S3_BUCKET = ""
	config.UPLOADS_DIR = t.TempDir()
	config.ADMIN_USERNAME = "admin"
	config.ADMIN_PASSWORD = "secret"
	config.ADMIN_PASSWORD_HASH = ""
	config.MAX_COMMENTERS = 2
	config.MAX_ARTWORKS = 2
	config.MAX_UPLOAD_SIZE_MB = 5
	db.Init()
	models.Init()
	storage.Init()

	router := gin.New()
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte("test-secret"))
	router.Use(sessions.Sessions("token", cookieStore))

	router.GET("/api/artworks", ArtworkList)
	router.GET("/api/artworks/:id", ArtworkGet)
	router.POST("/api/artworks/:id/comments", CommentCreate)
	router.POST("/api/artworks/:id/like", ArtworkLike)
	router.POST("/api/admin/login", AdminLogin)
	router.POST("/api/admin/logout", AdminLogout)
	router.GET("/api/admin/status", AdminStatus)
	adminRouter := &auth.Router{Base: router}
	adminRouter.POST("/api/admin/artworks", ArtworkUpload)
	adminRouter.DELETE("/api/admin/artworks/:id", ArtworkDelete)
	router.GET("/images/:name", ArtworkImage(false))
	router.GET("/thumbs/:name", ArtworkImage(true))
	return router
}

// do runs one request. Cookies from earlier responses are passed verbatim.
func do(router *gin.Engine, method, path, contentType string, body io.Reader, cookies []string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range cookies {
		req.Header.Add("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(router *gin.Engine, method, path string, payload any, cookies []string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	return do(router, method, path, "application/json", bytes.NewReader(data), cookies)
}

func sessionCookies(w *httptest.ResponseRecorder) []string {
	var cookies []string
	for _, sc := range w.Result().Cookies() {
		cookies = append(cookies, sc.Name+"="+sc.Value)
	}
	return cookies
}

func loginAdmin(t *testing.T, router *gin.Engine) []string {
	t.Helper()
	w := doJSON(router, "POST", "/api/admin/login",
		map[string]string{"username": "admin", "password": "secret"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := sessionCookies(w)
	require.NotEmpty(t, cookies)
	return cookies
}

// imageForm builds a multipart body with a small PNG and the given title
func imageForm(t *testing.T, title string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("title", title))
	require.NoError(t, form.WriteField("description", "a description"))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="test.png"`)
	header.Set("Content-Type", "image/png")
	part, err := form.CreatePart(header)
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, form.Close())
	return &body, form.FormDataContentType()
}

func uploadArtwork(t *testing.T, router *gin.Engine, cookies []string, title string) ArtworkInfo {
	t.Helper()
	body, contentType := imageForm(t, title)
	w := do(router, "POST", "/api/admin/artworks", contentType, body, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Artwork ArtworkInfo `json:"artwork"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Artwork.ID)
	return resp.Artwork
}
