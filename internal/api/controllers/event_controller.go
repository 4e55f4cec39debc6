package controllers

import (
	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var eventTypes = []view.Option{
	{Value: "accident", Label: "Accident"},
	{Value: "embouteillage", Label: "Embouteillage"},
	{Value: "radar", Label: "Radar"},
}

var eventForm = view.FormSpec{
	ID:          "add-event",
	Title:       "➕ Ajouter un événement",
	Action:      "/events",
	SubmitLabel: "➕ Ajouter un événement",
	Fields: []view.Field{
		{Name: "id", Label: "ID de l'événement", Placeholder: "Entrez l'ID de l'événement", Required: true},
		{Name: "type", Label: "Type d'événement", Kind: view.FieldSelect, Options: eventTypes, Default: "accident", Required: true},
		{Name: "infrastructure_id", Label: "Infrastructure", Kind: view.FieldSelect, Required: true},
	},
}

var eventBadges = view.NewBadgeLookup(view.Badge{Class: "badge-neutral", Icon: "❔"}, map[string]view.Badge{
	"accident":      {Class: "badge-accident", Icon: "💥"},
	"embouteillage": {Class: "badge-embouteillage", Icon: "🚗"},
	"radar":         {Class: "badge-radar", Icon: "📸"},
})

var eventTable = view.Table[response_models.Event]{
	ID:    "events",
	Title: "Liste des événements",
	Columns: []view.Column[response_models.Event]{
		{Header: "ID", Value: func(e response_models.Event) string { return e.ID }},
		{Header: "Type", Value: func(e response_models.Event) string { return e.Type }, Badge: eventBadges},
		{Header: "Infrastructure", Value: func(e response_models.Event) string {
			if e.InfrastructureName != "" {
				return e.InfrastructureName
			}
			return e.InfrastructureID
		}, Missing: "—"},
	},
	Empty: view.EmptyState{
		Text:    "Aucun événement enregistré",
		Subtext: "Ajoutez un événement pour commencer",
	},
}

// infrastructureOptions feeds the infrastructure select from the reference list.
func infrastructureOptions(infras []response_models.Infrastructure) []view.Option {
	opts := make([]view.Option, 0, len(infras)+1)
	opts = append(opts, view.Option{Value: "", Label: "Choisir une infrastructure"})
	for _, infra := range infras {
		label := infra.Name
		if label == "" {
			label = infra.ID
		}
		opts = append(opts, view.Option{Value: infra.ID, Label: label})
	}
	return opts
}

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents serves GET /events.
func (ec *EventController) ListEvents(c *gin.Context) {
	events, infras := ec.eventService.LoadEventsPage(c.Request.Context(), middleware.ViewSession(c))
	respondPage(c, ec.page(nil, eventForm.Defaults(), events, infras))
}

// AddEvent serves POST /events. Only the event list is re-fetched on success.
func (ec *EventController) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)
	infras := ec.eventService.CurrentInfrastructures(ctx, session)
	form := eventForm.WithOptions("infrastructure_id", infrastructureOptions(infras.Items))

	var req request_models.AddEventRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, form)
		respondPage(c, ec.page(invalidNotice(form, state), state, ec.eventService.CurrentEvents(ctx, session), infras))
		return
	}

	out := ec.eventService.AddEvent(ctx, req)
	if !out.OK {
		respondPage(c, ec.page(outcomeNotice(out), submitted(c, form), ec.eventService.CurrentEvents(ctx, session), infras))
		return
	}
	respondPage(c, ec.page(outcomeNotice(out), eventForm.Defaults(), ec.eventService.ListEvents(ctx, session), infras))
}

func (ec *EventController) page(
	notice *view.Notice,
	state view.FormState,
	events services.ListResult[response_models.Event],
	infras services.ListResult[response_models.Infrastructure],
) *view.Page {
	p := view.NewPage("events", "🚨", "Gérer les événements", "Ajoutez et surveillez les événements du réseau")
	p.Notice = notice

	if infras.Err != nil {
		p.Warn("❌ Impossible de charger les infrastructures : " + services.ErrorText(infras.Err))
	}
	form := eventForm.WithOptions("infrastructure_id", infrastructureOptions(infras.Items))
	p.AddSection("", []view.FormView{form.Bind(state)}, renderList(p, eventTable, events, "", "les événements"))
	return p
}
