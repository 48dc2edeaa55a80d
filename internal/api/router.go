package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eminentestates/residence-api/internal/api/handler"
	"github.com/eminentestates/residence-api/internal/api/middleware"
	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
	"github.com/eminentestates/residence-api/internal/core/service"
	mongodb "github.com/eminentestates/residence-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eminentestates/residence-api/internal/infrastructure/db/redis"
)

// access is the authorization requirement a route declares. Every
// route carries exactly one of these; the requirement is never
// inferred from the handler.
type access int

const (
	accessPublic    access = iota // no credential
	accessToken                   // verified token
	accessTokenSelf               // verified token + path email equals claim email
	accessAdmin                   // verified token + persisted admin role
	accessMember                  // verified token + persisted member role
)

// route is one row of the dispatch table: method, path, declared
// access level, terminal handler, and any route-specific middleware.
type route struct {
	method  string
	path    string
	access  access
	handler echo.HandlerFunc
	extra   []echo.MiddlewareFunc
}

// Deps carries everything the dispatch table binds to, expressed as
// ports so the wiring can be exercised against in-memory fakes.
type Deps struct {
	Tokens      ports.TokenService
	Users       ports.UserService
	Agreements  ports.AgreementService
	Residence   ports.ResidenceService
	UserRecords ports.UserRepository
	Limiter     ports.RateLimiter
	Readiness   echo.HandlerFunc
}

// NewRouter builds the production Echo instance: Mongo-backed
// repositories, Redis-backed rate limiting, and the full route table.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	userRepo := mongodb.NewUserRepository(db)
	agreementRepo := mongodb.NewAgreementRepository(db)
	apartmentRepo := mongodb.NewDocumentRepository(db, mongodb.ApartmentCollection)
	bookingRepo := mongodb.NewDocumentRepository(db, mongodb.BookingCollection)
	announcementRepo := mongodb.NewDocumentRepository(db, mongodb.AnnouncementCollection)
	couponRepo := mongodb.NewDocumentRepository(db, mongodb.CouponCollection)

	deps := Deps{
		Tokens:      service.NewTokenService(jwtSecret),
		Users:       service.NewUserService(userRepo, log),
		Agreements:  service.NewAgreementService(agreementRepo, log),
		Residence:   service.NewResidenceService(apartmentRepo, bookingRepo, announcementRepo, couponRepo, log),
		UserRecords: userRepo,
		Limiter:     redisdb.NewRateLimiter(rdb, 30, time.Minute),
		Readiness:   handler.NewReadinessHandler(db, rdb).Readiness,
	}

	return NewRouterWithDeps(deps, jwtSecret, log)
}

// NewRouterWithDeps assembles the Echo instance from already-built
// dependencies and registers the dispatch table.
func NewRouterWithDeps(deps Deps, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("residence"))

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Users)
	agreementHandler := handler.NewAgreementHandler(deps.Agreements)
	residenceHandler := handler.NewResidenceHandler(deps.Residence)
	healthHandler := handler.NewHealthHandler()

	// --- Per-access middleware chains ---
	auth := middleware.Auth(jwtSecret)
	chains := map[access][]echo.MiddlewareFunc{
		accessPublic:    nil,
		accessToken:     {auth},
		accessTokenSelf: {auth, middleware.RequireSelf("email")},
		accessAdmin:     {auth, middleware.RequireRole(deps.UserRecords, domain.RoleAdmin)},
		accessMember:    {auth, middleware.RequireRole(deps.UserRecords, domain.RoleMember)},
	}

	issueLimit := middleware.RateLimit(deps.Limiter, log)

	// --- Dispatch table ---
	// One row per endpoint; the access column is the authoritative,
	// reviewable declaration of what each route requires.
	routes := []route{
		{http.MethodGet, "/", accessPublic, healthHandler.Root, nil},
		{http.MethodGet, "/health", accessPublic, healthHandler.Liveness, nil},
		{http.MethodGet, "/health/ready", accessPublic, deps.Readiness, nil},

		{http.MethodPost, "/jwt", accessPublic, tokenHandler.Issue, []echo.MiddlewareFunc{issueLimit}},

		{http.MethodGet, "/apartments", accessPublic, residenceHandler.Apartments, nil},

		{http.MethodPost, "/users", accessPublic, userHandler.Register, nil},
		{http.MethodGet, "/users", accessToken, userHandler.List, nil},
		{http.MethodGet, "/user/admin/:email", accessTokenSelf, userHandler.CheckAdmin, nil},
		{http.MethodGet, "/user/member/:email", accessTokenSelf, userHandler.CheckMember, nil},
		{http.MethodPatch, "/updateUser/:id", accessAdmin, userHandler.UpdateRole, nil},

		{http.MethodPost, "/agreement", accessToken, agreementHandler.Submit, nil},
		{http.MethodGet, "/getAgreement", accessAdmin, agreementHandler.List, nil},
		{http.MethodGet, "/getAgreement/:email", accessToken, agreementHandler.GetByEmail, nil},
		{http.MethodPatch, "/updateAgreement/:id", accessAdmin, agreementHandler.Decide, nil},

		{http.MethodPost, "/booked", accessToken, residenceHandler.AddBooking, nil},
		{http.MethodGet, "/getBooked", accessToken, residenceHandler.Bookings, nil},

		{http.MethodPost, "/announcement", accessAdmin, residenceHandler.AddAnnouncement, nil},
		{http.MethodGet, "/getAnnouncement", accessMember, residenceHandler.Announcements, nil},

		{http.MethodPost, "/postCoupon", accessAdmin, residenceHandler.AddCoupon, nil},
		{http.MethodGet, "/allCoupon", accessAdmin, residenceHandler.Coupons, nil},
	}

	for _, r := range routes {
		mws := append(append([]echo.MiddlewareFunc{}, chains[r.access]...), r.extra...)
		e.Add(r.method, r.path, r.handler, mws...)
	}

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
