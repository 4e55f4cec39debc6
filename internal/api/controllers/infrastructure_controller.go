package controllers

import (
	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var infrastructureForm = view.FormSpec{
	ID:          "add-infrastructure",
	Title:       "➕ Ajouter une infrastructure",
	Action:      "/infrastructures",
	SubmitLabel: "➕ Ajouter une infrastructure",
	Fields: []view.Field{
		{Name: "id", Label: "ID de l'infrastructure", Placeholder: "Entrez l'ID de l'infrastructure", Required: true},
		{Name: "nom", Label: "Nom de l'infrastructure", Placeholder: "Entrez le nom de l'infrastructure", Required: true},
		{Name: "type", Label: "Type d'infrastructure", Kind: view.FieldSelect, Default: "route", Required: true, Options: []view.Option{
			{Value: "route", Label: "Route"},
			{Value: "stationsMetro", Label: "Station metro"},
			{Value: "parking", Label: "Parking"},
			{Value: "stationsBus", Label: "Station Bus"},
		}},
	},
}

var infrastructureBadges = view.NewBadgeLookup(view.Badge{Class: "badge-neutral", Icon: "🏗️"}, map[string]view.Badge{
	"route":         {Class: "badge-route", Icon: "🛣️"},
	"stationsMetro": {Class: "badge-stationsMetro", Icon: "🚇"},
	"parking":       {Class: "badge-parking", Icon: "🅿️"},
	"stationsBus":   {Class: "badge-stationsBus", Icon: "🚌"},
})

var infrastructureTable = view.Table[response_models.Infrastructure]{
	ID:    "infrastructures",
	Title: "Liste des infrastructures",
	Columns: []view.Column[response_models.Infrastructure]{
		{Header: "ID", Value: func(i response_models.Infrastructure) string { return i.ID }},
		{Header: "Nom", Value: func(i response_models.Infrastructure) string { return i.Name }},
		{Header: "Type", Value: func(i response_models.Infrastructure) string { return i.Type }, Badge: infrastructureBadges},
	},
	Empty: view.EmptyState{
		Text:    "Aucune infrastructure enregistrée",
		Subtext: "Ajoutez une infrastructure pour commencer",
	},
}

type InfrastructureController struct {
	infrastructureService services.InfrastructureServiceInterface
}

func NewInfrastructureController(infrastructureService services.InfrastructureServiceInterface) *InfrastructureController {
	return &InfrastructureController{infrastructureService: infrastructureService}
}

// ListInfrastructures serves GET /infrastructures.
func (ic *InfrastructureController) ListInfrastructures(c *gin.Context) {
	res := ic.infrastructureService.ListInfrastructures(c.Request.Context(), middleware.ViewSession(c))
	respondPage(c, ic.page(nil, infrastructureForm.Defaults(), res))
}

// AddInfrastructure serves POST /infrastructures.
func (ic *InfrastructureController) AddInfrastructure(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AddInfrastructureRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, infrastructureForm)
		respondPage(c, ic.page(invalidNotice(infrastructureForm, state), state, ic.infrastructureService.CurrentInfrastructures(ctx, session)))
		return
	}

	out := ic.infrastructureService.AddInfrastructure(ctx, req)
	if !out.OK {
		respondPage(c, ic.page(outcomeNotice(out), submitted(c, infrastructureForm), ic.infrastructureService.CurrentInfrastructures(ctx, session)))
		return
	}
	respondPage(c, ic.page(outcomeNotice(out), infrastructureForm.Defaults(), ic.infrastructureService.ListInfrastructures(ctx, session)))
}

func (ic *InfrastructureController) page(notice *view.Notice, state view.FormState, res services.ListResult[response_models.Infrastructure]) *view.Page {
	p := view.NewPage("infrastructures", "🏗️", "Gérer les infrastructures", "Ajoutez et gérez les infrastructures de transport")
	p.Notice = notice
	p.AddSection("", []view.FormView{infrastructureForm.Bind(state)}, renderList(p, infrastructureTable, res, "", "les infrastructures"))
	return p
}
