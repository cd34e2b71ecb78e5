package api

import (
	"net/http"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/middleware"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// CreateCategory handles POST /api/categories.
func CreateCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CategoryInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		c, err := svc.Create(r.Context(), middleware.GetUserID(r.Context()), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// ListCategories handles GET /api/categories.
func ListCategories(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context(), middleware.GetUserID(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// GetCategory handles GET /api/categories/{category_id}.
func GetCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "category_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		c, err := svc.Get(r.Context(), middleware.GetUserID(r.Context()), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// UpdateCategory handles PUT /api/categories/{category_id}.
func UpdateCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "category_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in service.CategoryInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		c, err := svc.Update(r.Context(), middleware.GetUserID(r.Context()), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// DeleteCategory handles DELETE /api/categories/{category_id}.
func DeleteCategory(svc *service.CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "category_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusNoContent, nil)
	}
}
