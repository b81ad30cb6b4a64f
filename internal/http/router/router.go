package router

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agenda-api/internal/http/handlers"
	"agenda-api/internal/http/middleware"
	"agenda-api/internal/security"
	"agenda-api/internal/store"
)

func Setup(eventStore *store.Store, resolver *security.Resolver) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging)

	auth := security.NewAuthorizer(resolver)
	agendaHandler := handlers.NewAgendaHandler(eventStore, auth)
	authHandler := handlers.NewAuthHandler(resolver)

	r.HandleFunc("/agenda", agendaHandler.List).Methods("GET")
	r.HandleFunc("/agenda", agendaHandler.Create).Methods("POST")
	r.HandleFunc("/agenda", handlers.Options("GET,POST,OPTIONS", "Content-Type, Authorization")).Methods("OPTIONS")

	// A bare or trailing-slash mutation lost its id segment.
	r.HandleFunc("/agenda", agendaHandler.MissingID).Methods("PUT", "DELETE")
	r.HandleFunc("/agenda/", agendaHandler.MissingID).Methods("PUT", "DELETE")

	r.HandleFunc("/agenda/{id}", agendaHandler.Update).Methods("PUT")
	r.HandleFunc("/agenda/{id}", agendaHandler.Delete).Methods("DELETE")
	r.HandleFunc("/agenda/{id}", handlers.Options("PUT,DELETE,OPTIONS", "Content-Type, Authorization")).Methods("OPTIONS")

	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/login", handlers.Options("POST,OPTIONS", "Content-Type")).Methods("OPTIONS")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
