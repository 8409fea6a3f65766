package main

import (
	"net/http"

	"github.com/lunafit/lunafit/internal/classifier"
	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/plan"
)

// planCreatePOST generates a personalized workout plan.
func (app *application) planCreatePOST(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if !app.decodeJSON(w, r, &req) {
		return
	}

	generated, err := app.planService.Generate(r.Context(), req)
	if err != nil {
		var (
			profileErr *plan.ProfileError
			unknownErr *classifier.UnknownValueError
		)
		switch {
		case errors.As(err, &profileErr):
			app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: profileErr.Error()})
		case errors.As(err, &unknownErr):
			app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: unknownErr.Error()})
		case errors.Is(err, plan.ErrNoCandidateTemplates), errors.Is(err, plan.ErrNoScorableTemplates):
			app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: "no suitable workout template for this profile"})
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.writeJSON(w, r, http.StatusOK, generated)
}
