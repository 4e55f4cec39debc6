package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"smartcity/internal/infra"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
	mem "smartcity/pkg/memcache"
	"smartcity/pkg/middleware"
	"smartcity/web"
)

// fakeBackend answers smart-city API calls from a route table and counts every call.
type fakeBackend struct {
	mu     sync.Mutex
	calls  map[string]int
	routes map[string]http.HandlerFunc
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls[key]++
	h, ok := f.routes[key]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeBackend) handle(key string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = h
}

func reply(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func newConsole(t *testing.T) (*gin.Engine, *fakeBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeBackend{calls: map[string]int{}, routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	backend := repositories.NewBackendRepository(&infra.Backend{BaseURL: srv.URL, HTTP: srv.Client()}, zap.NewNop())
	lists := services.NewListKeeper(mem.NewSnapshots(), time.Minute)
	infraRepo := repositories.NewInfrastructureRepository(backend)

	home := NewHomeController()
	health := NewHealthController(services.NewHealthService(backend))
	reviews := NewReviewController(services.NewReviewService(repositories.NewReviewRepository(backend), lists))
	events := NewEventController(services.NewEventService(repositories.NewEventRepository(backend), infraRepo, lists))
	infras := NewInfrastructureController(services.NewInfrastructureService(infraRepo, lists))
	recharge := NewRechargeController(services.NewRechargeService(repositories.NewRechargeRepository(backend), lists))
	tickets := NewTicketController(services.NewTicketService(repositories.NewTicketRepository(backend), lists))
	trips := NewTripController(services.NewTripService(repositories.NewTripRepository(backend), lists))
	transports := NewTransportController(services.NewTransportService(repositories.NewTransportRepository(backend), lists))

	templates, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.Use(middleware.TraceIDMiddleware(), middleware.ViewSessionMiddleware())
	r.GET("/", home.Home)
	r.GET("/health", health.Health)
	r.GET("/avis", reviews.ListReviews)
	r.POST("/avis", reviews.AddReview)
	r.GET("/events", events.ListEvents)
	r.POST("/events", events.AddEvent)
	r.GET("/infrastructures", infras.ListInfrastructures)
	r.POST("/infrastructures", infras.AddInfrastructure)
	r.GET("/recharge", recharge.ShowRecharge)
	r.POST("/recharge/stations", recharge.AddStation)
	r.POST("/recharge/links", recharge.AddLink)
	r.GET("/tickets", tickets.ListTickets)
	r.POST("/tickets", tickets.AssignTicket)
	r.GET("/trajets", trips.ListTrips)
	r.POST("/trajets", trips.AddTrip)
	r.POST("/trajets/links", trips.AddTripLink)
	r.GET("/transports", transports.ListNetworks)
	r.POST("/transports", transports.AddNetwork)
	r.NoRoute(home.NotFound)

	return r, fake
}

func get(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddReviewShowsServerMessageAndRefetchesOnce(t *testing.T) {
	r, fake := newConsole(t)
	var payload map[string]string
	fake.handle("POST /add_avis/", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&payload)
		reply(http.StatusOK, map[string]string{"message": "✅ Avis ajouté avec succès !"})(w, req)
	})
	fake.handle("GET /avis/", reply(http.StatusOK, []map[string]string{
		{"avis": "a1", "description": "great", "utilisateur": "u1"},
	}))

	w := postForm(r, "/avis", url.Values{"id": {" a1 "}, "description": {"great"}, "utilisateur_id": {"u1"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "✅ Avis ajouté avec succès !")
	assert.Contains(t, body, `class="notice notice-success"`)
	assert.Equal(t, 1, fake.count("POST /add_avis/"))
	assert.Equal(t, 1, fake.count("GET /avis/"))
	assert.Equal(t, map[string]string{"id": "a1", "description": "great", "utilisateur_id": "u1"}, payload)
	// form is back to its defaults
	assert.NotContains(t, body, `value="a1"`)
	assert.Contains(t, body, "<td>great</td>")
}

func TestAddReviewBlankFieldMakesNoRequest(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /avis/", reply(http.StatusOK, []map[string]string{}))

	w := postForm(r, "/avis", url.Values{"id": {"a1"}, "description": {"   "}, "utilisateur_id": {"u1"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, fake.count("POST /add_avis/"))
	assert.Contains(t, w.Body.String(), "Champs obligatoires manquants ou invalides : Description")
	assert.Contains(t, w.Body.String(), `value="a1"`)
}

func TestFilteredReviewsEmptyStateNamesUser(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /avis/u1", reply(http.StatusOK, []map[string]string{}))

	w := get(r, "/avis?user=u1")

	body := w.Body.String()
	assert.Equal(t, 1, fake.count("GET /avis/u1"))
	assert.Contains(t, body, "Aucun avis trouvé")
	assert.Contains(t, body, "Aucun avis pour l&#39;utilisateur &#34;u1&#34;")
	assert.Contains(t, body, "📋 Avis de l&#39;utilisateur &#39;u1&#39;")
}

func TestBlankReviewFilterIsUnfiltered(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /avis/", reply(http.StatusOK, []map[string]string{{"avis": "a1", "utilisateur": "u1"}}))

	w := get(r, "/avis?user=%20%20")

	assert.Equal(t, 1, fake.count("GET /avis/"))
	assert.Contains(t, w.Body.String(), "<td>a1</td>")
	assert.NotContains(t, w.Body.String(), "📋 Avis de l")
}

func TestAssignTicketRejectionIsBlockingAndKeepsForm(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("POST /add_ticket_voyageur/", reply(http.StatusOK, map[string]string{"error": "duplicate ticket"}))
	fake.handle("GET /tickets/v1", reply(http.StatusOK, map[string]any{"voyageur": "v1", "tickets": []string{"t0"}}))
	fake.handle("GET /tickets/", reply(http.StatusOK, map[string]string{"message": "Aucun ticket"}))

	w := postForm(r, "/tickets", url.Values{"voyageur_id": {"v1"}, "ticket_id": {"t1"}})

	body := w.Body.String()
	assert.Contains(t, body, `<dialog open class="notice-modal notice-error"`)
	assert.Contains(t, body, "<p>duplicate ticket</p>")
	assert.Contains(t, body, `value="t1"`)
	assert.Contains(t, body, "Aucun ticket enregistré")
}

func TestAssignTicketSuccessResetsOnlyTicketID(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("POST /add_ticket_voyageur/", reply(http.StatusOK, map[string]string{"message": "Ticket t1 ajouté"}))
	fake.handle("GET /tickets/v1", reply(http.StatusOK, map[string]any{"voyageur": "v1", "tickets": []string{"t1"}}))
	fake.handle("GET /tickets/", reply(http.StatusOK, map[string]any{"tickets": []map[string]string{
		{"ticket": "t1", "voyageur": "v1"},
		{"ticket": "t9"},
	}}))

	w := postForm(r, "/tickets", url.Values{"voyageur_id": {"v1"}, "ticket_id": {"t1"}})

	body := w.Body.String()
	assert.Contains(t, body, "<p>Ticket t1 ajouté</p>")
	assert.Contains(t, body, `name="voyageur_id" value="v1"`)
	assert.Contains(t, body, `name="ticket_id" value=""`)
	assert.Equal(t, 1, fake.count("GET /tickets/v1"))
	assert.Equal(t, 1, fake.count("GET /tickets/"))
	assert.Contains(t, body, "Tickets du voyageur v1")
	assert.Contains(t, body, `<span class="muted">N/A</span>`)
}

func TestTravelerLookupFailureIsSilent(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /tickets/v1", reply(http.StatusInternalServerError, map[string]string{"detail": "boom"}))
	fake.handle("GET /tickets/", reply(http.StatusOK, map[string]any{"tickets": []map[string]string{}}))

	w := get(r, "/tickets?voyageur=v1")

	body := w.Body.String()
	assert.NotContains(t, body, "boom")
	assert.Contains(t, body, `Le voyageur &#34;v1&#34; n&#39;a pas de tickets`)
}

func TestRechargeRelationsShowLastSegment(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /stations_recharge/", reply(http.StatusOK, []map[string]string{{"id": "st2"}}))
	fake.handle("GET /reseaux/seRecharge", reply(http.StatusOK, map[string]any{
		"count": 1,
		"data":  []map[string]string{{"reseau": "net#1", "station": "st#2"}},
	}))

	w := get(r, "/recharge")

	body := w.Body.String()
	assert.Contains(t, body, `<span class="badge badge-network">🚆 1</span>`)
	assert.Contains(t, body, `<span class="badge badge-station">⚡ 2</span>`)
	assert.Contains(t, body, `<span class="badge badge-station">⚡ st2</span>`)
}

func TestAddRechargeLinkRefetchesOnlyLinks(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /stations_recharge/", reply(http.StatusOK, []map[string]string{}))
	fake.handle("GET /reseaux/seRecharge", reply(http.StatusOK, map[string]any{"data": []map[string]string{}}))
	fake.handle("POST /reseaux/seRecharge", reply(http.StatusOK, map[string]string{"message": "Relation ajoutée"}))

	w := postForm(r, "/recharge/links", url.Values{"reseau": {"net1"}, "station": {"st1"}})

	assert.Contains(t, w.Body.String(), "Relation ajoutée")
	assert.Equal(t, 1, fake.count("POST /reseaux/seRecharge"))
	assert.Equal(t, 1, fake.count("GET /reseaux/seRecharge"))
	assert.Equal(t, 1, fake.count("GET /stations_recharge/"))
}

func TestUnknownEventTypeRendersNeutralBadge(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /events/", reply(http.StatusOK, []map[string]string{
		{"event": "e1", "type": "radar", "infrastructure": "i1", "nom_infra": "A7"},
		{"event": "e2", "type": "inondation", "infrastructure": "i2"},
	}))
	fake.handle("GET /get_infrastructures/", reply(http.StatusOK, []map[string]string{{"id": "i1", "nom": "A7", "type": "route"}}))

	w := get(r, "/events")

	body := w.Body.String()
	assert.Contains(t, body, `<span class="badge badge-radar">📸 radar</span>`)
	assert.Contains(t, body, `<span class="badge badge-neutral">❔ inondation</span>`)
	assert.Contains(t, body, `<option value="i1">A7</option>`)
	assert.Contains(t, body, "<td>i2</td>")
}

func TestAddEventRejectsUnknownType(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /events/", reply(http.StatusOK, []map[string]string{}))
	fake.handle("GET /get_infrastructures/", reply(http.StatusOK, []map[string]string{{"id": "i1", "nom": "A7"}}))

	w := postForm(r, "/events", url.Values{"id": {"e1"}, "type": {"tornade"}, "infrastructure_id": {"i1"}})

	assert.Equal(t, 0, fake.count("POST /add_event/"))
	assert.Contains(t, w.Body.String(), "Champs obligatoires manquants ou invalides : Type d&#39;événement")
}

func TestAddInfrastructureFallbackMessage(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("POST /add_infrastructure/", reply(http.StatusOK, map[string]string{}))
	fake.handle("GET /get_infrastructures/", reply(http.StatusOK, []map[string]string{{"id": "i1", "nom": "A7", "type": "parking"}}))

	w := postForm(r, "/infrastructures", url.Values{"id": {"i1"}, "nom": {"A7"}, "type": {"parking"}})

	body := w.Body.String()
	assert.Contains(t, body, "✅ Infrastructure ajoutée avec succès !")
	assert.Contains(t, body, `<option value="route" selected>`)
	assert.Equal(t, 1, fake.count("GET /get_infrastructures/"))
}

func TestAddTripDetailIsBlocking(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("POST /add_trajet/", reply(http.StatusBadRequest, map[string]string{"detail": "Trajet déjà existant"}))
	fake.handle("GET /utilisateurs/trajets/", reply(http.StatusOK, map[string]any{"relations": []map[string]string{
		{"utilisateur": "u1", "trajet": "tr1", "duree": "25 min", "distance": "10 km"},
	}}))

	w := postForm(r, "/trajets", url.Values{"id": {"tr1"}, "duree": {"25 min"}, "distance": {"10 km"}})

	body := w.Body.String()
	assert.Contains(t, body, `<dialog open class="notice-modal notice-error"`)
	assert.Contains(t, body, "Trajet déjà existant")
	assert.Contains(t, body, `value="25 min"`)
	assert.Contains(t, body, "<td>10 km</td>")
}

func TestTransportsKeepLastKnownGoodListOnFailure(t *testing.T) {
	r, fake := newConsole(t)
	fake.handle("GET /reseaux_transport/", reply(http.StatusOK, []map[string]string{
		{"id": "n1", "nom": "Ligne 1", "type": "Métro"},
		{"id": "n2", "nom": "Navette", "type": "hovercraft"},
	}))

	first := get(r, "/transports")
	body := first.Body.String()
	assert.Contains(t, body, `<span class="badge net-metro">🚇 Métro</span>`)
	assert.Contains(t, body, `<span class="badge net-default">🚦 hovercraft</span>`)
	assert.Contains(t, body, `<span class="stat-number">2</span>`)

	var session *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)

	fake.handle("GET /reseaux_transport/", reply(http.StatusInternalServerError, map[string]string{"detail": "database down"}))
	second := get(r, "/transports", session)

	body = second.Body.String()
	assert.Contains(t, body, "Ligne 1")
	assert.Contains(t, body, "stale-flag")
	assert.Contains(t, body, "Impossible de charger les réseaux de transport : database down")
}

func TestHealth(t *testing.T) {
	r, fake := newConsole(t)

	down := get(r, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, down.Code)

	fake.handle("GET /", reply(http.StatusOK, map[string]string{"message": "Bienvenue"}))
	up := get(r, "/health")
	assert.Equal(t, http.StatusOK, up.Code)
	assert.Contains(t, up.Body.String(), `"reachable":true`)
}

func TestHomeAndNotFound(t *testing.T) {
	r, _ := newConsole(t)

	home := get(r, "/")
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), `href="/transports"`)

	missing := get(r, "/nope")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "Page introuvable")
}
