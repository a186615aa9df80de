package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"spendtrack/internal/api/rest/handler"
	"spendtrack/internal/api/rest/middleware"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
)

// Router wires handlers and middleware into the HTTP routing table.
type Router struct {
	authService    handler.AuthService
	expenseService handler.ExpenseService
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router.
func New(
	authService handler.AuthService,
	expenseService handler.ExpenseService,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		expenseService: expenseService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the routing table. Routes under /expenses require a
// valid bearer token.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()

	logging := middleware.NewLogging(r.logger)
	cors := middleware.NewCORS(r.allowedOrigins)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	m.Use(logging.Handle, cors.Handle)

	authHandler := handler.NewAuth(r.authService, r.logger)
	expenseHandler := handler.NewExpense(r.expenseService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth()

	m.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	m.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	m.HandleFunc("/ping", healthHandler.Ping).Methods(http.MethodGet)

	protected := m.PathPrefix("/expenses").Subrouter()
	protected.Use(authenticate.Handle)
	protected.HandleFunc("", expenseHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("", expenseHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/{id}", expenseHandler.Delete).Methods(http.MethodDelete, http.MethodOptions)

	return m
}
