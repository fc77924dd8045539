// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	aboutfeature "github.com/byuhkorea/alumnihub/internal/app/features/about"
	admindashfeature "github.com/byuhkorea/alumnihub/internal/app/features/admindash"
	admineventsfeature "github.com/byuhkorea/alumnihub/internal/app/features/adminevents"
	admingalleryfeature "github.com/byuhkorea/alumnihub/internal/app/features/admingallery"
	adminleadershipfeature "github.com/byuhkorea/alumnihub/internal/app/features/adminleadership"
	adminmembersfeature "github.com/byuhkorea/alumnihub/internal/app/features/adminmembers"
	adminnewsfeature "github.com/byuhkorea/alumnihub/internal/app/features/adminnews"
	authgooglefeature "github.com/byuhkorea/alumnihub/internal/app/features/authgoogle"
	directoryfeature "github.com/byuhkorea/alumnihub/internal/app/features/directory"
	errorsfeature "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	eventsfeature "github.com/byuhkorea/alumnihub/internal/app/features/events"
	galleryfeature "github.com/byuhkorea/alumnihub/internal/app/features/gallery"
	givefeature "github.com/byuhkorea/alumnihub/internal/app/features/give"
	healthfeature "github.com/byuhkorea/alumnihub/internal/app/features/health"
	homefeature "github.com/byuhkorea/alumnihub/internal/app/features/home"
	loginfeature "github.com/byuhkorea/alumnihub/internal/app/features/login"
	logoutfeature "github.com/byuhkorea/alumnihub/internal/app/features/logout"
	newsfeature "github.com/byuhkorea/alumnihub/internal/app/features/news"
	profilefeature "github.com/byuhkorea/alumnihub/internal/app/features/profile"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	oauthstate "github.com/byuhkorea/alumnihub/internal/app/store/oauthstate"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The handler mounts the public pages (home, about, events, news,
// gallery, give), the Google sign-in flow, the member area (profile,
// directory), and the role-gated admin console.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.AlumniMongoDatabase

	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on
	// each request. This ensures role changes and profile updates take
	// effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(db))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	blob, err := buildBlobStore(appCfg)
	if err != nil {
		logger.Error("blob store init failed", zap.Error(err))
		return nil, err
	}

	// One shared in-process cache behind the public list pages.
	c := cache.New()

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	stateStore := oauthstate.New(db)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Remember the ?lang= choice in a cookie so the whole session stays
	// in the visitor's language.
	r.Use(i18n.Persist)

	// Every POST form carries the gorilla.csrf.Token hidden input.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.AlumniMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Locally stored uploads (profile photos, event/news/gallery images).
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*",
			http.StripPrefix(appCfg.StorageLocalURL+"/",
				http.FileServer(http.Dir(appCfg.StorageLocalPath))))
	}

	// Public pages
	homeHandler := homefeature.NewHandler(db, c, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(db, c, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	eventsHandler := eventsfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler, sessionMgr))

	newsHandler := newsfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/news", newsfeature.Routes(newsHandler))

	galleryHandler := galleryfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler))

	giveHandler := givefeature.NewHandler(logger)
	r.Mount("/give", givefeature.Routes(giveHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	googleHandler := authgooglefeature.NewHandler(db, sessionMgr, stateStore,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Member area
	profileHandler := profilefeature.NewHandler(db, blob, c, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	directoryHandler := directoryfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/directory", directoryfeature.Routes(directoryHandler, sessionMgr))

	// Admin console
	dashHandler := admindashfeature.NewHandler(db, logger)
	r.Mount("/admin", admindashfeature.Routes(dashHandler, sessionMgr))

	adminEventsHandler := admineventsfeature.NewHandler(db, blob, c, errLog, logger)
	r.Mount("/admin/events", admineventsfeature.Routes(adminEventsHandler, sessionMgr))

	adminNewsHandler := adminnewsfeature.NewHandler(db, blob, c, errLog, logger)
	r.Mount("/admin/news", adminnewsfeature.Routes(adminNewsHandler, sessionMgr))

	adminGalleryHandler := admingalleryfeature.NewHandler(db, blob, c, errLog, logger)
	r.Mount("/admin/gallery", admingalleryfeature.Routes(adminGalleryHandler, sessionMgr))

	adminLeadershipHandler := adminleadershipfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/admin/leadership", adminleadershipfeature.Routes(adminLeadershipHandler, sessionMgr))

	adminMembersHandler := adminmembersfeature.NewHandler(db, c, errLog, logger)
	r.Mount("/admin/members", adminmembersfeature.Routes(adminMembersHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// buildBlobStore picks the image storage backend from config.
func buildBlobStore(appCfg AppConfig) (blobstore.Store, error) {
	switch appCfg.StorageType {
	case "gcs":
		return blobstore.NewGCS(context.Background(), appCfg.StorageGCSBucket, appCfg.StorageGCSPrefix)
	default:
		return blobstore.NewLocal(appCfg.StorageLocalPath, appCfg.StorageLocalURL)
	}
}
