package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var ticketForm = view.FormSpec{
	ID:          "assign-ticket",
	Title:       "➕ Ajouter un ticket à un voyageur",
	Action:      "/tickets",
	SubmitLabel: "🎟️ Attribuer le ticket",
	Fields: []view.Field{
		{Name: "voyageur_id", Label: "ID Voyageur", Placeholder: "Entrez l'ID du voyageur", Required: true},
		{Name: "ticket_id", Label: "ID Ticket", Placeholder: "Entrez l'ID du ticket", Required: true},
	},
}

var travelerLookupForm = view.FormSpec{
	ID:          "traveler-tickets",
	Title:       "🔍 Voir les tickets d'un voyageur",
	Action:      "/tickets",
	Method:      "get",
	SubmitLabel: "🔍 Rechercher les tickets",
	Fields: []view.Field{
		{Name: "voyageur", Label: "ID Voyageur", Placeholder: "Entrez l'ID du voyageur"},
	},
}

var travelerTicketTable = view.Table[string]{
	ID:     "traveler-tickets",
	Title:  "Tickets du voyageur",
	Layout: view.LayoutCards,
	Columns: []view.Column[string]{
		{Header: "Ticket", Value: func(t string) string { return t },
			Badge: view.NewBadgeLookup(view.Badge{Class: "badge-ticket", Icon: "🎫"}, nil)},
	},
	Empty: view.EmptyState{
		Text:            "Aucun ticket trouvé pour ce voyageur",
		Subtext:         "Entrez un ID voyageur pour rechercher",
		FilteredSubtext: `Le voyageur "%s" n'a pas de tickets`,
	},
}

var ticketTable = view.Table[response_models.Ticket]{
	ID:    "tickets",
	Title: "📋 Tous les tickets",
	Columns: []view.Column[response_models.Ticket]{
		{Header: "Ticket", Value: func(t response_models.Ticket) string { return t.Ticket },
			Badge: view.NewBadgeLookup(view.Badge{Class: "badge-ticket", Icon: "🎫"}, nil)},
		{Header: "Voyageur", Value: func(t response_models.Ticket) string { return t.Traveler }, Missing: "N/A"},
	},
	Empty: view.EmptyState{
		Text:    "Aucun ticket enregistré",
		Subtext: "Attribuez des tickets aux voyageurs pour commencer",
	},
}

type TicketController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketController(ticketService services.TicketServiceInterface) *TicketController {
	return &TicketController{ticketService: ticketService}
}

type ticketState struct {
	form      view.FormState
	traveler  string
	travelers services.ListResult[string]
	tickets   services.ListResult[response_models.Ticket]
}

// ListTickets serves GET /tickets. ?voyageur= also looks up that traveler's tickets.
func (tc *TicketController) ListTickets(c *gin.Context) {
	traveler := strings.TrimSpace(c.Query("voyageur"))
	travelers, tickets := tc.ticketService.LoadTicketsPage(c.Request.Context(), middleware.ViewSession(c), traveler)

	respondPage(c, tc.page(nil, ticketState{
		form:      ticketForm.Defaults().With("voyageur_id", traveler),
		traveler:  traveler,
		travelers: travelers,
		tickets:   tickets,
	}))
}

// AssignTicket serves POST /tickets. On success only the ticket id is cleared and
// both the traveler's tickets and the full list are re-fetched.
func (tc *TicketController) AssignTicket(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AssignTicketRequest
	bindErr := bindForm(c, &req)
	st := ticketState{form: submitted(c, ticketForm), traveler: req.TravelerID}

	if bindErr != nil {
		st.travelers = tc.ticketService.CurrentTravelerTickets(ctx, session, st.traveler)
		st.tickets = tc.ticketService.CurrentTickets(ctx, session)
		respondPage(c, tc.page(invalidNotice(ticketForm, st.form).AsBlocking(), st))
		return
	}

	out := tc.ticketService.AssignTicket(ctx, req)
	if !out.OK {
		st.travelers = tc.ticketService.CurrentTravelerTickets(ctx, session, st.traveler)
		st.tickets = tc.ticketService.CurrentTickets(ctx, session)
		respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), st))
		return
	}

	st.form = st.form.With("ticket_id", "")
	st.travelers, st.tickets = tc.ticketService.LoadTicketsPage(ctx, session, st.traveler)
	respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), st))
}

func (tc *TicketController) page(notice *view.Notice, st ticketState) *view.Page {
	p := view.NewPage("tickets", "🎟️", "Gestion des Tickets", "Attribuez et consultez les tickets des voyageurs")
	p.Notice = notice

	// a failed traveler lookup keeps the previous cards without a warning
	travelers := renderList(p, travelerTicketTable, st.travelers, st.traveler, "")
	if st.traveler != "" {
		travelers.Title = "Tickets du voyageur " + st.traveler
	}

	p.AddSection("", []view.FormView{ticketForm.Bind(st.form)})
	p.AddSection("", []view.FormView{travelerLookupForm.Bind(view.FormState{"voyageur": st.traveler})}, travelers)
	p.AddSection("", nil, renderList(p, ticketTable, st.tickets, "", "les tickets"))
	return p
}
