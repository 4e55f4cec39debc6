package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"smartcity/internal/infra"
	"smartcity/internal/models/request_models"
	"smartcity/pkg/middleware"
	"smartcity/pkg/utils"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *BackendRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackendRepository(&infra.Backend{BaseURL: srv.URL, HTTP: srv.Client()}, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListReviewsByUserEscapesPathAndForwardsTrace(t *testing.T) {
	var gotPath, gotTrace string
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotTrace = r.Header.Get(middleware.TraceHeader)
		writeJSON(w, http.StatusOK, []map[string]string{{"avis": "a1"}})
	})
	repo := NewReviewRepository(backend)

	ctx := middleware.WithTraceID(context.Background(), "trace-1")
	reviews, err := repo.ListReviewsByUser(ctx, "u 1/x")

	require.NoError(t, err)
	assert.Equal(t, "/avis/u%201%2Fx", gotPath)
	assert.Equal(t, "trace-1", gotTrace)
	require.Len(t, reviews, 1)
	assert.Equal(t, "a1", reviews[0].ID)
}

func TestCreateReviewSendsJSONPayload(t *testing.T) {
	var payload map[string]string
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add_avis/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		writeJSON(w, http.StatusOK, map[string]string{"message": "✅ Avis ajouté avec succès !"})
	})
	repo := NewReviewRepository(backend)

	msg, err := repo.CreateReview(context.Background(), request_models.AddReviewRequest{
		ID: "a1", Description: "great", UserID: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, "✅ Avis ajouté avec succès !", msg.Message)
	assert.Equal(t, map[string]string{"id": "a1", "description": "great", "utilisateur_id": "u1"}, payload)
}

func TestPostTreatsErrorFieldOn2xxAsRejection(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"error": "duplicate ticket"})
	})
	repo := NewTicketRepository(backend)

	_, err := repo.AssignTicket(context.Background(), request_models.AssignTicketRequest{TravelerID: "v1", TicketID: "t1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBackendRejected)
	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "duplicate ticket", msg)
}

func TestPostSurfacesDetailOnHTTPError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Erreur Fuseki : boom"})
	})
	repo := NewRechargeRepository(backend)

	_, err := repo.CreateLink(context.Background(), request_models.AddRechargeLinkRequest{NetworkID: "n", StationID: "s"})

	require.Error(t, err)
	assert.Equal(t, "Erreur Fuseki : boom", err.Error())
}

func TestPostSummarisesValidationDetail(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body", "id"}, "msg": "field required"}},
		})
	})
	repo := NewTripRepository(backend)

	_, err := repo.CreateTrip(context.Background(), request_models.AddTripRequest{})

	msg, ok := ServerMessage(err)
	require.True(t, ok)
	assert.Equal(t, "field required", msg)
}

func TestHTTPErrorWithoutBodyUsesStatusText(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := NewEventRepository(backend)

	_, err := repo.ListEvents(context.Background())

	require.Error(t, err)
	_, ok := ServerMessage(err)
	assert.False(t, ok)
	assert.Equal(t, "request failed with status code 500", err.Error())
}

func TestTransportFailureIsBackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	backend := NewBackendRepository(&infra.Backend{BaseURL: srv.URL, HTTP: http.DefaultClient}, zap.NewNop())

	_, err := NewTransportRepository(backend).ListNetworks(context.Background())

	assert.ErrorIs(t, err, utils.ErrBackendUnavailable)
}

func TestUndecodableListIsDecodeError(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := NewInfrastructureRepository(backend).ListInfrastructures(context.Background())

	assert.ErrorIs(t, err, utils.ErrDecodeResponse)
}

func TestEnvelopesAreUnwrapped(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reseaux/seRecharge":
			writeJSON(w, http.StatusOK, map[string]any{"count": 1, "data": []map[string]string{{"reseau": "ex#net1", "station": "ex#st2"}}})
		case "/utilisateurs/trajets/":
			writeJSON(w, http.StatusOK, map[string]any{"count": 1, "relations": []map[string]string{{"utilisateur": "u1", "trajet": "t1", "duree": "25 min", "distance": "10 km"}}})
		case "/tickets/":
			writeJSON(w, http.StatusOK, map[string]any{"tickets": []map[string]any{{"ticket": "t1", "voyageur": nil}}})
		case "/tickets/v9":
			writeJSON(w, http.StatusOK, map[string]string{"message": "⚠️ Aucun ticket trouvé pour le voyageur 'v9'."})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	links, err := NewRechargeRepository(backend).ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ex#net1", links[0].Network)

	relations, err := NewTripRepository(backend).ListTripRelations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10 km", relations[0].Distance)

	tickets, err := NewTicketRepository(backend).ListTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tickets[0].Traveler)

	mine, err := NewTicketRepository(backend).ListTravelerTickets(ctx, "v9")
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.NotNil(t, mine)
}

func TestPing(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Bienvenue"})
	})

	assert.NoError(t, backend.Ping(context.Background()))
}
