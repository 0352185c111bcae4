package api

import (
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// API serves the public JSON intake endpoints. The database handle is
// injected; the type carries no other state.
type API struct {
	DB *gorm.DB
}

func New(conn *gorm.DB) *API {
	return &API{DB: conn}
}

// Routes returns the subrouter mounted under /api.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", a.Health)

	r.Post("/quote", a.CreateQuote)
	r.Post("/subscribe", a.Subscribe)
	r.Post("/unsubscribe", a.Unsubscribe)
	r.Post("/lead", a.CaptureLead)

	r.Get("/tickets", a.ListTickets)
	r.Get("/leads", a.ListLeads)

	r.Route("/ticket/{code}", func(r chi.Router) {
		r.Get("/", a.GetTicket)
		r.Get("/messages", a.ListMessages)
		r.Post("/message", a.AddMessage)
		r.Put("/status", a.UpdateStatus)
		r.Get("/qr.png", a.TicketQR)
	})

	return r
}
