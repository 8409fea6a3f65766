package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	standard := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logRequest(secureHeaders(app.timeout(next))))
	}

	mux.Handle("GET /api/healthy", standard(http.HandlerFunc(app.healthy)))

	mux.Handle("POST /api/plans", standard(http.HandlerFunc(app.planCreatePOST)))
	mux.Handle("GET /api/exercises", standard(http.HandlerFunc(app.exerciseListGET)))
	mux.Handle("GET /api/exercises/{exerciseID}", standard(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("POST /api/admin/exercises/generate-descriptions",
		standard(http.HandlerFunc(app.adminGenerateDescriptionsPOST)))

	return mux
}
