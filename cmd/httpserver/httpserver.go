// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ebank/internal/accountdelivery"
	"ebank/internal/accountrepo"
	"ebank/internal/accountservice"
	"ebank/internal/customerdelivery"
	"ebank/internal/customerrepo"
	"ebank/internal/customerservice"
	"ebank/internal/middleware"
	"ebank/internal/operationrepo"
	"ebank/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	customerRepo := customerrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	operationRepo := operationrepo.NewRepoPGS(conn)

	customerService := customerservice.New(customerRepo)
	accountService := accountservice.New(accountRepo, operationRepo, customerService)

	customerHandler := customerdelivery.NewHandler(customerService)
	accountHandler := accountdelivery.NewHandler(accountService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/customers", customerHandler.List)
	engine.GET("/customers/search", customerHandler.Search)
	engine.GET("/customers/:id", customerHandler.Get)
	engine.POST("/customers", customerHandler.Create)
	engine.PUT("/customers/:id", customerHandler.Update)
	engine.DELETE("/customers/:id", customerHandler.Delete)

	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.POST("/accounts/current", accountHandler.CreateCurrent)
	engine.POST("/accounts/saving", accountHandler.CreateSaving)
	engine.POST("/accounts/debit", accountHandler.Debit)
	engine.POST("/accounts/credit", accountHandler.Credit)
	engine.POST("/accounts/transfer", accountHandler.Transfer)
	engine.GET("/accounts/:id/operations", accountHandler.History)
	engine.GET("/accounts/:id/pageOperations", accountHandler.PagedHistory)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
