package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"server/auth"
	"server/cache"
	"server/config"
	"server/db"
	"server/models"
	"server/storage"
	"server/utils"
	"server/web"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func newPageCache() cache.Store {
	if config.REDIS_ADDR != "" {
		return cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: config.REDIS_ADDR}))
	}
	return cache.NewMemoryStore()
}

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.FailedResponseLog)
	}

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}

	// The home feed is served from cache within a fixed window; new
	// posts only show up once the window lapses
	feedCache := newPageCache()
	feedTTL := time.Duration(config.FEED_CACHE_SECONDS) * time.Second
	router.GET("/", cache.Page(feedCache, feedTTL), web.Index)

	router.GET("/group_list/", web.GroupList)
	router.GET("/group/:slug/", web.GroupPosts)
	router.GET("/404/", web.PageNotFound)
	router.GET("/500/", web.ServerError)
	router.GET("/media/*path", web.Media)
	router.GET("/auth/login/", web.Login)
	router.POST("/auth/login/", web.Login)
	router.GET("/auth/signup/", web.Signup)
	router.POST("/auth/signup/", web.Signup)
	router.GET("/auth/logout/", web.Logout)

	// Routes that require a signed-in user; anonymous visitors are
	// redirected to the login page
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/new/", web.NewPost)
	authRouter.POST("/new/", web.NewPost)
	authRouter.GET("/new_group/", web.NewGroup)
	authRouter.POST("/new_group/", web.NewGroup)
	authRouter.GET("/follow/", web.FollowIndex)

	router.GET("/:username/", web.Profile)
	authRouter.GET("/:username/follow/", web.ProfileFollow)
	authRouter.GET("/:username/unfollow/", web.ProfileUnfollow)
	// For the two delete routes the first segment is a numeric id, but
	// gin permits only one wildcard name per segment
	authRouter.GET("/:username/comment_delete/", web.CommentDelete)
	authRouter.GET("/:username/post_delete/", web.PostDelete)
	router.GET("/:username/:post_id/", web.PostView)
	authRouter.GET("/:username/:post_id/edit/", web.EditPost)
	authRouter.POST("/:username/:post_id/edit/", web.EditPost)
	authRouter.POST("/:username/:post_id/comment/", web.AddComment)

	router.NoRoute(web.PageNotFound)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
