package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"quicknotes/auth"
	"quicknotes/config"
	"quicknotes/db"
	"quicknotes/handlers"
	appmw "quicknotes/middleware"
	"quicknotes/store"
)

func newRouter(cfg *config.Config, h *handlers.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(appmw.CORS(cfg.CORSOrigin))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/reset-password", h.ResetPassword)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Get("/fetch", h.GetNotes)
		r.Post("/add", h.CreateNote)
		r.Delete("/{id}", h.DeleteNote)
	})

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	defer conn.Close()

	users := store.NewUserStore(conn)
	notes := store.NewNoteStore(conn)

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, users)
	if err != nil {
		log.Fatal("Config error: ", err)
	}
	authSvc := auth.NewService(users, tokens, cfg.BcryptCost, cfg.SignupAdmin)

	h := handlers.New(authSvc, tokens, notes)
	r := newRouter(cfg, h)

	log.Println("Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("Server error: ", err)
	}
}
