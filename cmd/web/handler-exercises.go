package main

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/lunafit/lunafit/internal/errors"
	"github.com/lunafit/lunafit/internal/plan"
)

// mdRenderer renders exercise descriptions. Raw HTML in the markdown is
// escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// exerciseInfoResponse is an exercise with its description rendered to HTML.
type exerciseInfoResponse struct {
	plan.Exercise
	DescriptionHTML string `json:"description_html,omitempty"`
}

// exerciseListGET returns the exercise catalog.
func (app *application) exerciseListGET(w http.ResponseWriter, r *http.Request) {
	exercises, err := app.planService.ListExercises(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, exercises)
}

// exerciseInfoGET returns a single exercise with rendered description.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := strconv.Atoi(r.PathValue("exerciseID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	exercise, err := app.planService.GetExercise(r.Context(), exerciseID)
	if errors.Is(err, plan.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := exerciseInfoResponse{Exercise: exercise}
	if exercise.DescriptionMarkdown != "" {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(exercise.DescriptionMarkdown), &buf); err != nil {
			app.serverError(w, r, errors.Wrap(err, "render description"))
			return
		}
		resp.DescriptionHTML = buf.String()
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}
