package request_models

import "strings"

// Form payloads double as backend request bodies: `form` tags bind the console's
// HTML forms, `json` tags name the fields the backend expects.

type AddReviewRequest struct {
	ID          string `form:"id" json:"id" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	UserID      string `form:"utilisateur_id" json:"utilisateur_id" binding:"required"`
}

type AddEventRequest struct {
	ID               string `form:"id" json:"id" binding:"required"`
	Type             string `form:"type" json:"type" binding:"required,oneof=accident embouteillage radar"`
	InfrastructureID string `form:"infrastructure_id" json:"infrastructure_id" binding:"required"`
}

type AddInfrastructureRequest struct {
	ID   string `form:"id" json:"id" binding:"required"`
	Name string `form:"nom" json:"nom" binding:"required"`
	Type string `form:"type" json:"type" binding:"required,oneof=route stationsMetro parking stationsBus"`
}

type AddChargingStationRequest struct {
	ID string `form:"id" json:"id" binding:"required"`
}

type AddRechargeLinkRequest struct {
	NetworkID string `form:"reseau" json:"reseau" binding:"required"`
	StationID string `form:"station" json:"station" binding:"required"`
}

type AssignTicketRequest struct {
	TravelerID string `form:"voyageur_id" json:"voyageur_id" binding:"required"`
	TicketID   string `form:"ticket_id" json:"ticket_id" binding:"required"`
}

type AddTripRequest struct {
	ID       string `form:"id" json:"id" binding:"required"`
	Duration string `form:"duree" json:"duree" binding:"required"`
	Distance string `form:"distance" json:"distance" binding:"required"`
}

type AddTripLinkRequest struct {
	UserID string `form:"utilisateur" json:"utilisateur" binding:"required"`
	TripID string `form:"trajet" json:"trajet" binding:"required"`
}

type AddTransportNetworkRequest struct {
	ID          string `form:"id" json:"id" binding:"required"`
	Name        string `form:"nom" json:"nom" binding:"required"`
	NetworkType string `form:"type_reseau" json:"type_reseau" binding:"required"`
}

// Trim strips surrounding whitespace from every field. Every create form is trimmed
// before validation, so a whitespace-only value counts as blank.
func (r *AddReviewRequest) Trim() {
	trimAll(&r.ID, &r.Description, &r.UserID)
}

func (r *AddEventRequest) Trim() {
	trimAll(&r.ID, &r.Type, &r.InfrastructureID)
}

func (r *AddInfrastructureRequest) Trim() {
	trimAll(&r.ID, &r.Name, &r.Type)
}

func (r *AddChargingStationRequest) Trim() {
	trimAll(&r.ID)
}

func (r *AddRechargeLinkRequest) Trim() {
	trimAll(&r.NetworkID, &r.StationID)
}

func (r *AssignTicketRequest) Trim() {
	trimAll(&r.TravelerID, &r.TicketID)
}

func (r *AddTripRequest) Trim() {
	trimAll(&r.ID, &r.Duration, &r.Distance)
}

func (r *AddTripLinkRequest) Trim() {
	trimAll(&r.UserID, &r.TripID)
}

func (r *AddTransportNetworkRequest) Trim() {
	trimAll(&r.ID, &r.Name, &r.NetworkType)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
