package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/handler"
	"portfolio/internal/validate"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	skillHandler *handler.SkillHandler,
	projectHandler *handler.ProjectHandler,
	certificateHandler *handler.CertificateHandler,
	messageHandler *handler.MessageHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	// Generous body limit for multipart uploads; per-file size is enforced
	// again against MaxUploadSize in the upload handler.
	e.Use(middleware.BodyLimit("10M"))

	// Add validator
	e.Validator = &CustomValidator{validator: validate.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StorageDriver == "local" {
		uploads := e.Group("/uploads", func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				// Lets a frontend served from another origin embed the files
				// during development.
				if !cfg.IsProduction() {
					c.Response().Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
				}
				return next(c)
			}
		})
		uploads.Static("/", cfg.UploadDir)
	}

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", authHandler.Verify)
	api.GET("/userinfo", profileHandler.Get)
	api.GET("/skills", skillHandler.List)
	api.GET("/projects", projectHandler.List)
	api.GET("/certificates", certificateHandler.List)
	api.POST("/contact", messageHandler.Submit)

	// Secured routes (require the admin JWT)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			// A missing token and a bad one answer differently so the
			// admin UI can tell "log in" from "log in again".
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "no token provided",
					Code:  "UNAUTHORIZED",
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "invalid token",
				Code:  "FORBIDDEN",
			})
		},
	}))

	secured.PUT("/userinfo", profileHandler.Update)

	secured.POST("/skills", skillHandler.Create)
	secured.PUT("/skills/:id", skillHandler.Update)
	secured.DELETE("/skills/:id", skillHandler.Delete)

	secured.POST("/projects", projectHandler.Create)
	secured.PUT("/projects/:id", projectHandler.Update)
	secured.DELETE("/projects/:id", projectHandler.Delete)

	secured.POST("/certificates", certificateHandler.Create)
	secured.PUT("/certificates/:id", certificateHandler.Update)
	secured.DELETE("/certificates/:id", certificateHandler.Delete)

	secured.GET("/messages", messageHandler.List)
	secured.PATCH("/messages/:id/read", messageHandler.MarkRead)
	secured.POST("/messages/:id/reply", messageHandler.Reply)
	secured.DELETE("/messages/:id", messageHandler.Delete)

	secured.POST("/upload/photo", uploadHandler.Photo)
	secured.POST("/upload/cv", uploadHandler.CV)
	secured.POST("/upload/project-image", uploadHandler.ProjectImage)
	secured.POST("/upload/certificate-image", uploadHandler.CertificateImage)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Route not found"})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validate.ToValidationError(cv.validator.Struct(i))
}
