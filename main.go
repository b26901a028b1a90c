package main

import (
	"log"
	"strings"
	"time"

	"gallery/auth"
	"gallery/config"
	"gallery/db"
	"gallery/handlers"
	"gallery/models"
	"gallery/storage"
	"gallery/utils"
	"gallery/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	// Config was already read from the environment; a .env file adds to it
	if godotenv.Load() == nil {
		config.Load()
	}
	if config.SESSION_SECRET == "" {
		log.Fatal("SESSION_SECRET is empty")
	}
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_SECRET))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/images/", "/thumbs/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that
	router.MaxMultipartMemory = int64(config.MAX_UPLOAD_SIZE_MB) << 20

	// Public API
	router.GET("/api/artworks", handlers.ArtworkList)
	router.GET("/api/artworks/:id", handlers.ArtworkGet)
	router.POST("/api/artworks/:id/comments", handlers.CommentCreate)
	router.POST("/api/artworks/:id/like", handlers.ArtworkLike)
	// Admin session
	router.POST("/api/admin/login", handlers.AdminLogin)
	router.POST("/api/admin/logout", handlers.AdminLogout)
	router.GET("/api/admin/status", handlers.AdminStatus)
	// Admin-only routes
	adminRouter := &auth.Router{Base: router}
	adminRouter.POST("/api/admin/artworks", handlers.ArtworkUpload)
	adminRouter.DELETE("/api/admin/artworks/:id", handlers.ArtworkDelete)
	adminRouter.GET("/ws/dashboard", handlers.DashboardSocket)
	// Stored images
	router.GET("/images/:name", handlers.ArtworkImage(false))
	router.GET("/thumbs/:name", handlers.ArtworkImage(true))

	/*
	 *	Web interface
	 */
	router.GET("/", web.Page("index.html"))
	router.GET("/admin", web.Page("admin.html"))
	router.GET("/dashboard", web.Page("dashboard.html"))
	router.Static("/static", config.STATIC_DIR)
	router.GET("/robots.txt", web.DisallowRobots)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
