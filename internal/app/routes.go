package app

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	adminsubsdata "github.com/seacatering/sea-catering-backend/internal/http/handlers/admin/subsdata"
	authlogin "github.com/seacatering/sea-catering-backend/internal/http/handlers/auth/login"
	authoauth "github.com/seacatering/sea-catering-backend/internal/http/handlers/auth/oauth"
	authregister "github.com/seacatering/sea-catering-backend/internal/http/handlers/auth/register"
	contactcreate "github.com/seacatering/sea-catering-backend/internal/http/handlers/contact/create"
	contactlist "github.com/seacatering/sea-catering-backend/internal/http/handlers/contact/list"
	contactremove "github.com/seacatering/sea-catering-backend/internal/http/handlers/contact/remove"
	"github.com/seacatering/sea-catering-backend/internal/http/handlers/health"
	subcancel "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/cancel"
	subcreate "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/create"
	sublist "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/list"
	subpause "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/pause"
	subreactivate "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/reactivate"
	subread "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/read"
	subreadbyuser "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/readbyuser"
	subremove "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/remove"
	subresume "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/resume"
	subupdate "github.com/seacatering/sea-catering-backend/internal/http/handlers/subscription/update"
	testimonialcreate "github.com/seacatering/sea-catering-backend/internal/http/handlers/testimonial/create"
	testimoniallist "github.com/seacatering/sea-catering-backend/internal/http/handlers/testimonial/list"
	usercreate "github.com/seacatering/sea-catering-backend/internal/http/handlers/user/create"
	userlist "github.com/seacatering/sea-catering-backend/internal/http/handlers/user/list"
	userremove "github.com/seacatering/sea-catering-backend/internal/http/handlers/user/remove"
	userupdate "github.com/seacatering/sea-catering-backend/internal/http/handlers/user/update"
	"github.com/seacatering/sea-catering-backend/internal/http/middlewarectx"
	"github.com/seacatering/sea-catering-backend/internal/lib/jwt"
	authservice "github.com/seacatering/sea-catering-backend/internal/services/auth"
	contactservice "github.com/seacatering/sea-catering-backend/internal/services/contact"
	metricsservice "github.com/seacatering/sea-catering-backend/internal/services/metrics"
	subservice "github.com/seacatering/sea-catering-backend/internal/services/subscription"
	testimonialservice "github.com/seacatering/sea-catering-backend/internal/services/testimonial"
	userservice "github.com/seacatering/sea-catering-backend/internal/services/user"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	tokenTTL time.Duration,
	subscriptionService *subservice.SubscriptionService,
	authService *authservice.AuthService,
	userService *userservice.UserService,
	contactService *contactservice.ContactService,
	testimonialService *testimonialservice.TestimonialService,
	metricsService *metricsservice.MetricsService,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	oauthHandler := authoauth.New(logger, authService, tokenTTL)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authregister.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", authlogin.New(logger, authService, tokenTTL).ServeHTTP)
		r.Get("/auth/{provider}", oauthHandler.Begin)
		r.Get("/auth/{provider}/callback", oauthHandler.Callback)
		r.Post("/contacts", contactcreate.New(logger, contactService).ServeHTTP)
		r.Get("/testimonials", testimoniallist.New(logger, testimonialService).ServeHTTP)

		// Authenticated group
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/{id}", subread.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/user/{userId}", subreadbyuser.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions/{id}/pause", subpause.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions/{id}/resume", subresume.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions/{id}/cancel", subcancel.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscriptions/{id}/reactivate", subreactivate.New(logger, subscriptionService).ServeHTTP)
			r.Post("/testimonials", testimonialcreate.New(logger, testimonialService).ServeHTTP)

			// Admin group
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireAdmin(logger))

				r.Get("/subscriptions", sublist.New(logger, subscriptionService).ServeHTTP)
				r.Put("/subscriptions/{id}", subupdate.New(logger, subscriptionService).ServeHTTP)
				r.Delete("/subscriptions/{id}", subremove.New(logger, subscriptionService).ServeHTTP)
				r.Get("/admin/subsData", adminsubsdata.New(logger, metricsService).ServeHTTP)
				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
				r.Get("/contacts", contactlist.New(logger, contactService).ServeHTTP)
				r.Delete("/contacts/{id}", contactremove.New(logger, contactService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New().ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
