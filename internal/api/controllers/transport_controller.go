package controllers

import (
	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var networkForm = view.FormSpec{
	ID:          "add-network",
	Title:       "➕ Ajouter un nouveau réseau",
	Action:      "/transports",
	SubmitLabel: "Ajouter le réseau",
	ResetHref:   "/transports",
	ResetLabel:  "🔄 Réinitialiser",
	Fields: []view.Field{
		{Name: "id", Label: "ID", Placeholder: "ID unique du réseau", Required: true},
		{Name: "nom", Label: "Nom", Placeholder: "Nom du réseau de transport", Required: true},
		{Name: "type_reseau", Label: "Type Réseau", Placeholder: "Ex: Métro, Bus, Train", Required: true},
	},
}

// Network types are free text, matched without case or accents ("Métro" is metro).
var networkBadges = view.NewBadgeLookup(view.Badge{Class: "net-default", Icon: "🚦"}, map[string]view.Badge{
	"metro":  {Class: "net-metro", Icon: "🚇"},
	"bus":    {Class: "net-bus", Icon: "🚌"},
	"train":  {Class: "net-train", Icon: "🚆"},
	"tram":   {Class: "net-tram", Icon: "🚊"},
	"bateau": {Class: "net-bateau", Icon: "⛴️"},
	"velo":   {Class: "net-velo", Icon: "🚲"},
}).Folding(view.FoldLower)

var networkTable = view.Table[response_models.TransportNetwork]{
	ID:    "networks",
	Title: "📋 Liste des Réseaux de Transport",
	Columns: []view.Column[response_models.TransportNetwork]{
		{Header: "ID", Value: func(n response_models.TransportNetwork) string { return n.ID }},
		{Header: "Nom", Value: func(n response_models.TransportNetwork) string { return n.Name }},
		{Header: "Type", Value: func(n response_models.TransportNetwork) string { return n.Type }, Badge: networkBadges},
	},
	Empty: view.EmptyState{
		Text:    "Aucun réseau de transport trouvé",
		Subtext: "Commencez par ajouter un nouveau réseau de transport",
	},
}

type TransportController struct {
	transportService services.TransportServiceInterface
}

func NewTransportController(transportService services.TransportServiceInterface) *TransportController {
	return &TransportController{transportService: transportService}
}

// ListNetworks serves GET /transports.
func (tc *TransportController) ListNetworks(c *gin.Context) {
	res := tc.transportService.ListNetworks(c.Request.Context(), middleware.ViewSession(c))
	respondPage(c, tc.page(nil, networkForm.Defaults(), res))
}

// AddNetwork serves POST /transports.
func (tc *TransportController) AddNetwork(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AddTransportNetworkRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, networkForm)
		respondPage(c, tc.page(invalidNotice(networkForm, state), state, tc.transportService.CurrentNetworks(ctx, session)))
		return
	}

	out := tc.transportService.AddNetwork(ctx, req)
	if !out.OK {
		respondPage(c, tc.page(outcomeNotice(out), submitted(c, networkForm), tc.transportService.CurrentNetworks(ctx, session)))
		return
	}
	respondPage(c, tc.page(outcomeNotice(out), networkForm.Defaults(), tc.transportService.ListNetworks(ctx, session)))
}

func (tc *TransportController) page(notice *view.Notice, state view.FormState, res services.ListResult[response_models.TransportNetwork]) *view.Page {
	p := view.NewPage("transports", "🚆", "Gestion des Réseaux de Transport",
		"Administrez les différents réseaux de transport de votre ville intelligente")
	p.Notice = notice
	p.Stats = []view.Stat{{Label: "Réseaux actifs", Value: len(res.Items)}}
	p.AddSection("", []view.FormView{networkForm.Bind(state)}, renderList(p, networkTable, res, "", "les réseaux de transport"))
	return p
}
