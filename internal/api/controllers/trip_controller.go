package controllers

import (
	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var tripForm = view.FormSpec{
	ID:          "add-trip",
	Title:       "➕ Ajouter un Trajet",
	Action:      "/trajets",
	SubmitLabel: "🛣️ Ajouter Trajet",
	Fields: []view.Field{
		{Name: "id", Label: "ID Trajet", Placeholder: "Entrez l'ID du trajet", Required: true},
		{Name: "duree", Label: "Durée", Placeholder: "Ex: 25 min", Required: true},
		{Name: "distance", Label: "Distance", Placeholder: "Ex: 10 km", Required: true},
	},
}

var tripLinkForm = view.FormSpec{
	ID:          "add-trip-link",
	Title:       "🔗 Ajouter relation Utilisateur → Trajet",
	Action:      "/trajets/links",
	SubmitLabel: "🔗 Ajouter Relation",
	Fields: []view.Field{
		{Name: "utilisateur", Label: "ID Utilisateur", Placeholder: "Entrez l'ID utilisateur", Required: true},
		{Name: "trajet", Label: "ID Trajet", Placeholder: "Entrez l'ID trajet", Required: true},
	},
}

var tripRelationTable = view.Table[response_models.TripRelation]{
	ID:    "trip-relations",
	Title: "📋 Relations Utilisateur → Trajet",
	Columns: []view.Column[response_models.TripRelation]{
		{Header: "Utilisateur", Value: func(r response_models.TripRelation) string { return r.UserID }},
		{Header: "Trajet", Value: func(r response_models.TripRelation) string { return r.TripID }},
		{Header: "Durée", Value: func(r response_models.TripRelation) string { return r.Duration }, Missing: "—"},
		{Header: "Distance", Value: func(r response_models.TripRelation) string { return r.Distance }, Missing: "—"},
	},
	Empty: view.EmptyState{
		Text:    "Aucune relation enregistrée",
		Subtext: "Ajoutez des relations utilisateur → trajet pour commencer",
	},
}

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// ListTrips serves GET /trajets.
func (tc *TripController) ListTrips(c *gin.Context) {
	res := tc.tripService.ListRelations(c.Request.Context(), middleware.ViewSession(c))
	respondPage(c, tc.page(nil, tripForm.Defaults(), tripLinkForm.Defaults(), res))
}

// AddTrip serves POST /trajets.
func (tc *TripController) AddTrip(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AddTripRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, tripForm)
		respondPage(c, tc.page(invalidNotice(tripForm, state).AsBlocking(), state, tripLinkForm.Defaults(), tc.tripService.CurrentRelations(ctx, session)))
		return
	}

	out := tc.tripService.AddTrip(ctx, req)
	if !out.OK {
		respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), submitted(c, tripForm), tripLinkForm.Defaults(), tc.tripService.CurrentRelations(ctx, session)))
		return
	}
	respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), tripForm.Defaults(), tripLinkForm.Defaults(), tc.tripService.ListRelations(ctx, session)))
}

// AddTripLink serves POST /trajets/links.
func (tc *TripController) AddTripLink(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AddTripLinkRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, tripLinkForm)
		respondPage(c, tc.page(invalidNotice(tripLinkForm, state).AsBlocking(), tripForm.Defaults(), state, tc.tripService.CurrentRelations(ctx, session)))
		return
	}

	out := tc.tripService.AddTripLink(ctx, req)
	if !out.OK {
		respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), tripForm.Defaults(), submitted(c, tripLinkForm), tc.tripService.CurrentRelations(ctx, session)))
		return
	}
	respondPage(c, tc.page(outcomeNotice(out).AsBlocking(), tripForm.Defaults(), tripLinkForm.Defaults(), tc.tripService.ListRelations(ctx, session)))
}

func (tc *TripController) page(notice *view.Notice, trip, link view.FormState, res services.ListResult[response_models.TripRelation]) *view.Page {
	p := view.NewPage("trajets", "🛣️", "Gestion des Trajets", "Gérez les trajets et leurs relations avec les utilisateurs")
	p.Notice = notice
	p.AddSection("", []view.FormView{tripForm.Bind(trip), tripLinkForm.Bind(link)})
	p.AddSection("", nil, renderList(p, tripRelationTable, res, "", "les trajets"))
	return p
}
