package handler

import (
	"net/http"

	"github.com/dkoval/algotrack/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, authHandler *AuthHandler, algorithms *AlgorithmHandler, progress *ProgressHandler) {
	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.HandleFunc("GET /api/algorithms", algorithms.HandleList)
	mux.HandleFunc("GET /api/algorithms/{slug}", algorithms.HandleGet)
	mux.HandleFunc("GET /api/algorithms/meta/categories", algorithms.HandleCategories)
	mux.HandleFunc("GET /api/algorithms/meta/difficulties", algorithms.HandleDifficulties)

	mux.Handle("GET /api/progress", RequireAuth(auth, http.HandlerFunc(progress.HandleList)))
	mux.Handle("GET /api/progress/stats", RequireAuth(auth, http.HandlerFunc(progress.HandleStats)))
	mux.Handle("GET /api/progress/{ref}", RequireAuth(auth, http.HandlerFunc(progress.HandleGet)))
	mux.Handle("POST /api/progress/{ref}", RequireAuth(auth, http.HandlerFunc(progress.HandleUpsert)))
}
