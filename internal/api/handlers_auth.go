package api

import (
	"net/http"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// Register handles POST /api/register.
func Register(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.RegisterInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		result, err := svc.Register(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

// Login handles POST /api/login.
func Login(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.LoginInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		result, err := svc.Login(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
