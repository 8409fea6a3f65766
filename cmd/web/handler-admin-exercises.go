package main

import "net/http"

// adminGenerateDescriptionsPOST generates missing exercise descriptions with
// the OpenAI API. Long-running; intended for operator use.
func (app *application) adminGenerateDescriptionsPOST(w http.ResponseWriter, r *http.Request) {
	updated, err := app.planService.GenerateMissingDescriptions(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]int{"updated": updated})
}
