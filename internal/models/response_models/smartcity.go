package response_models

type Review struct {
	ID          string `json:"avis"`
	Description string `json:"description"`
	UserID      string `json:"utilisateur"`
}

type Event struct {
	ID                 string `json:"event"`
	Type               string `json:"type"`
	InfrastructureID   string `json:"infrastructure"`
	InfrastructureName string `json:"nom_infra"`
}

type Infrastructure struct {
	ID   string `json:"id"`
	Name string `json:"nom"`
	Type string `json:"type"`
}

type ChargingStation struct {
	ID string `json:"id"`
}

// RechargeLink is a network -> station edge. Both ends come back as full IRIs
// (".../ontology#net1"); pages show the part after the last "#".
type RechargeLink struct {
	Network string `json:"reseau"`
	Station string `json:"station"`
}

type RechargeLinksEnvelope struct {
	Count int            `json:"count"`
	Data  []RechargeLink `json:"data"`
}

type TravelerTicketsEnvelope struct {
	Traveler string   `json:"voyageur"`
	Tickets  []string `json:"tickets"`
	Message  string   `json:"message"`
}

type Ticket struct {
	Ticket   string `json:"ticket"`
	Traveler string `json:"voyageur"`
}

type TicketsEnvelope struct {
	Tickets []Ticket `json:"tickets"`
	Message string   `json:"message"`
}

type TripRelation struct {
	UserID   string `json:"utilisateur"`
	TripID   string `json:"trajet"`
	Duration string `json:"duree"`
	Distance string `json:"distance"`
}

type TripRelationsEnvelope struct {
	Count     int            `json:"count"`
	Relations []TripRelation `json:"relations"`
}

type TransportNetwork struct {
	ID   string `json:"id"`
	Name string `json:"nom"`
	Type string `json:"type"`
}
