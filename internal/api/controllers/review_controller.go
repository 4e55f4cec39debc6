package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/middleware"
)

var reviewForm = view.FormSpec{
	ID:          "add-review",
	Title:       "➕ Ajouter un avis",
	Action:      "/avis",
	SubmitLabel: "💬 Ajouter l'avis",
	Fields: []view.Field{
		{Name: "id", Label: "ID de l'avis", Placeholder: "Entrez l'ID de l'avis", Required: true},
		{Name: "utilisateur_id", Label: "ID utilisateur", Placeholder: "Entrez l'ID utilisateur", Required: true},
		{Name: "description", Label: "Description", Placeholder: "Entrez la description", Required: true},
	},
}

var reviewFilterForm = view.FormSpec{
	ID:          "filter-reviews",
	Title:       "🔍 Filtrer par utilisateur",
	Action:      "/avis",
	Method:      "get",
	SubmitLabel: "🔍 Rechercher",
	ResetHref:   "/avis?reset=1",
	ResetLabel:  "↻ Réinitialiser",
	Fields: []view.Field{
		{Name: "user", Label: "ID utilisateur", Placeholder: "Entrez l'ID utilisateur à filtrer"},
	},
}

var reviewTable = view.Table[response_models.Review]{
	ID:    "reviews",
	Title: "📋 Liste des avis",
	Columns: []view.Column[response_models.Review]{
		{Header: "ID", Value: func(r response_models.Review) string { return r.ID }},
		{Header: "Utilisateur", Value: func(r response_models.Review) string { return r.UserID }, Missing: "—"},
		{Header: "Description", Value: func(r response_models.Review) string { return r.Description }},
	},
	Empty: view.EmptyState{
		Text:            "Aucun avis trouvé",
		Subtext:         "Ajoutez un avis pour commencer",
		FilteredSubtext: `Aucun avis pour l'utilisateur "%s"`,
	},
}

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews serves GET /avis. ?user= filters by user, ?reset=1 shows the full list again.
func (rc *ReviewController) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)
	user := strings.TrimSpace(c.Query("user"))

	var (
		notice *view.Notice
		res    services.ListResult[response_models.Review]
	)
	switch {
	case c.Query("reset") != "":
		user = ""
		res = rc.reviewService.ListReviews(ctx, session)
		if res.Err == nil {
			notice = view.Info("🔄 Liste complète des avis")
		}
	case user != "":
		res = rc.reviewService.ListReviewsByUser(ctx, session, user)
		if res.Err == nil {
			notice = view.Info(fmt.Sprintf("📋 Avis de l'utilisateur '%s'", user))
		}
	default:
		res = rc.reviewService.ListReviews(ctx, session)
	}

	respondPage(c, rc.page(notice, reviewForm.Defaults(), user, res))
}

// AddReview serves POST /avis.
func (rc *ReviewController) AddReview(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.ViewSession(c)

	var req request_models.AddReviewRequest
	if err := bindForm(c, &req); err != nil {
		state := submitted(c, reviewForm)
		respondPage(c, rc.page(invalidNotice(reviewForm, state), state, "", rc.reviewService.CurrentReviews(ctx, session)))
		return
	}

	out := rc.reviewService.AddReview(ctx, req)
	if !out.OK {
		respondPage(c, rc.page(outcomeNotice(out), submitted(c, reviewForm), "", rc.reviewService.CurrentReviews(ctx, session)))
		return
	}
	respondPage(c, rc.page(outcomeNotice(out), reviewForm.Defaults(), "", rc.reviewService.ListReviews(ctx, session)))
}

func (rc *ReviewController) page(notice *view.Notice, state view.FormState, user string, res services.ListResult[response_models.Review]) *view.Page {
	p := view.NewPage("avis", "💬", "Gestion des avis", "Consultez et gérez les retours des utilisateurs")
	p.Notice = notice

	forms := []view.FormView{
		reviewForm.Bind(state),
		reviewFilterForm.Bind(view.FormState{"user": user}),
	}
	p.AddSection("", forms, renderList(p, reviewTable, res, user, "les avis"))
	return p
}
