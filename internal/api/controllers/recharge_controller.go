package controllers

import (
	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var stationForm = view.FormSpec{
	ID:          "add-station",
	Title:       "➕ Ajouter une station",
	Action:      "/recharge/stations",
	SubmitLabel: "➕ Ajouter une station",
	Fields: []view.Field{
		{Name: "id", Label: "ID de la station", Placeholder: "Entrez l'ID de la station", Required: true},
	},
}

var rechargeLinkForm = view.FormSpec{
	ID:          "add-recharge-link",
	Title:       "🔗 Ajouter une relation Réseau → Station",
	Action:      "/recharge/links",
	SubmitLabel: "🔗 Ajouter la relation",
	Fields: []view.Field{
		{Name: "reseau", Label: "ID du réseau", Placeholder: "Entrez l'ID du réseau", Required: true},
		{Name: "station", Label: "ID de la station", Placeholder: "Entrez l'ID de la station", Required: true},
	},
}

var stationTable = view.Table[response_models.ChargingStation]{
	ID:     "stations",
	Title:  "📋 Stations de recharge",
	Layout: view.LayoutCards,
	Columns: []view.Column[response_models.ChargingStation]{
		{Header: "Station", Value: func(s response_models.ChargingStation) string { return s.ID },
			Badge: view.NewBadgeLookup(view.Badge{Class: "badge-station", Icon: "⚡"}, nil)},
	},
	Empty: view.EmptyState{
		Text:    "Aucune station de recharge",
		Subtext: "Ajoutez une station pour commencer",
	},
}

var rechargeLinkTable = view.Table[response_models.RechargeLink]{
	ID:    "recharge-links",
	Title: "🔗 Relations Réseau → Station",
	Columns: []view.Column[response_models.RechargeLink]{
		{Header: "Réseau", Value: func(l response_models.RechargeLink) string { return view.LastSegment(l.Network) },
			Badge: view.NewBadgeLookup(view.Badge{Class: "badge-network", Icon: "🚆"}, nil)},
		{Header: "Station", Value: func(l response_models.RechargeLink) string { return view.LastSegment(l.Station) },
			Badge: view.NewBadgeLookup(view.Badge{Class: "badge-station", Icon: "⚡"}, nil)},
	},
	Empty: view.EmptyState{
		Text:    "Aucune relation réseau → station",
		Subtext: "Ajoutez une relation pour commencer",
	},
}

type RechargeController struct {
	rechargeService services.RechargeServiceInterface
}

func NewRechargeController(rechargeService services.RechargeServiceInterface) *RechargeController {
	return &RechargeController{rechargeService: rechargeService}
}

type rechargeState struct {
	station  view.FormState
	link     view.FormState
	stations services.ListResult[response_models.ChargingStation]
	links    services.ListResult[response_models.RechargeLink]
}

// ShowRecharge serves GET /recharge: stations and relations are fetched independently.
func (rc *RechargeController) ShowRecharge(c *gin.Context) {
	stations, links := rc.rechargeService.LoadRechargePage(c.Request.Context(), middleware.ViewSession(c))
	respondPage(c, rc.page(nil, rechargeState{
		station:  stationForm.Defaults(),
		link:     rechargeLinkForm.Defaults(),
		stations: stations,
		links:    links,
	}))
}

// AddStation serves POST /recharge/stations. Only the station list is re-fetched.
func (rc *RechargeController) AddStation(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)
	st := rechargeState{
		station: submitted(c, stationForm),
		link:    rechargeLinkForm.Defaults(),
		links:   rc.rechargeService.CurrentLinks(ctx, session),
	}

	var req request_models.AddChargingStationRequest
	if err := bindForm(c, &req); err != nil {
		st.stations = rc.rechargeService.CurrentStations(ctx, session)
		respondPage(c, rc.page(invalidNotice(stationForm, st.station), st))
		return
	}

	out := rc.rechargeService.AddStation(ctx, req)
	if out.OK {
		st.station = stationForm.Defaults()
		st.stations = rc.rechargeService.ListStations(ctx, session)
	} else {
		st.stations = rc.rechargeService.CurrentStations(ctx, session)
	}
	respondPage(c, rc.page(outcomeNotice(out), st))
}

// AddLink serves POST /recharge/links. Only the relation list is re-fetched.
func (rc *RechargeController) AddLink(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)
	st := rechargeState{
		station:  stationForm.Defaults(),
		stations: rc.rechargeService.CurrentStations(ctx, session),
	}

	var req request_models.AddRechargeLinkRequest
	if err := bindForm(c, &req); err != nil {
		st.link = submitted(c, rechargeLinkForm)
		st.links = rc.rechargeService.CurrentLinks(ctx, session)
		respondPage(c, rc.page(invalidNotice(rechargeLinkForm, st.link), st))
		return
	}

	out := rc.rechargeService.AddLink(ctx, req)
	if out.OK {
		st.link = rechargeLinkForm.Defaults()
		st.links = rc.rechargeService.ListLinks(ctx, session)
	} else {
		st.link = submitted(c, rechargeLinkForm)
		st.links = rc.rechargeService.CurrentLinks(ctx, session)
	}
	respondPage(c, rc.page(outcomeNotice(out), st))
}

func (rc *RechargeController) page(notice *view.Notice, st rechargeState) *view.Page {
	p := view.NewPage("recharge", "⚡", "Gestion Stations de Recharge", "Gérez les stations de recharge et leurs relations avec les réseaux")
	p.Notice = notice

	p.AddSection("", []view.FormView{stationForm.Bind(st.station), rechargeLinkForm.Bind(st.link)})
	p.AddSection("", nil,
		renderList(p, stationTable, st.stations, "", "les stations de recharge"),
		renderList(p, rechargeLinkTable, st.links, "", "les relations réseau → station"))
	return p
}
