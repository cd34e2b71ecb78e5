package api

import (
	"net/http"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/middleware"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/service"
)

// CreateGroup handles POST /api/groups.
func CreateGroup(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.GroupInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		g, err := svc.Create(r.Context(), middleware.GetUserID(r.Context()), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, g)
	}
}

// ListGroups handles GET /api/groups.
func ListGroups(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.ListForUser(r.Context(), middleware.GetUserID(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, groups)
	}
}

// GetGroup handles GET /api/groups/{group_id}.
func GetGroup(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		g, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// UpdateGroup handles PUT /api/groups/{group_id}.
func UpdateGroup(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in service.GroupInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		g, err := svc.Update(r.Context(), middleware.GetUserID(r.Context()), id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

// DeleteGroup handles DELETE /api/groups/{group_id}.
func DeleteGroup(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "group_id")
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

// ListGroupMembers handles GET /api/groups/{group_id}/members.
func ListGroupMembers(svc *service.GroupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "group_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		members, err := svc.Members(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, members)
	}
}
