package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"smartcity/internal/services"
	"smartcity/internal/view"
	"smartcity/pkg/utils"
)

const pageTemplate = "page.tmpl"

type trimmable interface {
	Trim()
}

// bindForm binds the posted form into req, trims every field and validates the
// trimmed values, so whitespace-only input never passes a required rule.
func bindForm(c *gin.Context, req trimmable) error {
	err := c.ShouldBindWith(req, binding.Form)
	req.Trim()
	if err == nil {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidForm, err)
	}
	return nil
}

// submitted is the state of form as the user posted it, trimmed.
func submitted(c *gin.Context, form view.FormSpec) view.FormState {
	return form.StateFrom(c.Request.PostForm)
}

func invalidNotice(form view.FormSpec, state view.FormState) *view.Notice {
	problems := form.Problems(state)
	if len(problems) == 0 {
		return view.Failure("❌ Formulaire invalide.")
	}
	return view.Failure("❌ Champs obligatoires manquants ou invalides : " + strings.Join(problems, ", "))
}

func outcomeNotice(out services.Outcome) *view.Notice {
	if out.OK {
		return view.Success(out.Message)
	}
	return view.Failure(out.Message)
}

// renderList renders res with table and flags a failed fetch: the rows stay the
// last-known-good list and, when what is set, a warning names the list.
func renderList[T any](p *view.Page, table view.Table[T], res services.ListResult[T], filter, what string) view.TableView {
	tv := table.Render(res.Items, filter)
	if res.Err != nil {
		tv.Stale = true
		if what != "" {
			p.Warn(fmt.Sprintf("❌ Impossible de charger %s : %s", what, services.ErrorText(res.Err)))
		}
	}
	return tv
}

func respondPage(c *gin.Context, p *view.Page) {
	utils.RespondPage(c, http.StatusOK, pageTemplate, p)
}
