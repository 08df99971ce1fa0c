package server

import (
	"net/http"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	userservice "github.com/FrumiousOwl/Teses-front-sub000/services/user"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
)

func (srv *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	if err := srv.Users.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load user accounts")
		return
	}

	q := r.URL.Query()
	srv.Users.ClearFilters()
	srv.Users.SetUsernameFilter(q.Get("username"))
	srv.Users.SetEmailFilter(q.Get("email"))
	srv.Users.SetPage(pageParam(q))

	payload := listResponse[models.UserAccount](srv.Users)
	payload.Filters = map[string]string{
		"username": srv.Users.FilterTerm("username"),
		"email":    srv.Users.FilterTerm("email"),
	}
	utils.RespondJSON(w, http.StatusOK, payload)
}

func (srv *Server) handleUserRegister(w http.ResponseWriter, r *http.Request) {
	var draft userservice.RegisterDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid registration payload")
		return
	}

	srv.Users.OpenCreate()
	srv.Users.SetRegisterDraft(draft)
	if err := srv.Users.SaveDraft(r.Context()); err != nil {
		srv.Users.CloseModal()
		respondServiceError(w, err, "failed to register user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, listResponse[models.UserAccount](srv.Users))
}

func (srv *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}
	var draft userservice.UserDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user payload")
		return
	}

	if err := srv.Users.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load user accounts")
		return
	}
	if err := srv.Users.OpenEdit(id); err != nil {
		respondServiceError(w, err, "user not found")
		return
	}
	srv.Users.SetEditDraft(draft)
	if err := srv.Users.SaveDraft(r.Context()); err != nil {
		srv.Users.CloseModal()
		respondServiceError(w, err, "failed to update user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.UserAccount](srv.Users))
}

func (srv *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}

	if err := srv.Users.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load user accounts")
		return
	}
	if err := srv.Users.OpenDelete(id); err != nil {
		respondServiceError(w, err, "user not found")
		return
	}
	if err := srv.Users.ConfirmDelete(r.Context()); err != nil {
		srv.Users.CloseModal()
		respondServiceError(w, err, "failed to delete user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.UserAccount](srv.Users))
}

type roleReq struct {
	RoleID int `json:"roleId"`
}

func (srv *Server) handleUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}
	var req roleReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid role payload")
		return
	}

	if err := srv.Users.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load user accounts")
		return
	}
	if err := srv.Users.UpdateRole(r.Context(), id, req.RoleID); err != nil {
		respondServiceError(w, err, "failed to update role")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.UserAccount](srv.Users))
}

func (srv *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req userservice.ResetPasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid reset payload")
		return
	}
	if err := srv.Users.ResetPassword(r.Context(), req); err != nil {
		respondServiceError(w, err, "failed to reset password")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "password reset requested"})
}

func (srv *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req userservice.ChangePasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid change payload")
		return
	}
	if err := srv.Users.ChangePassword(r.Context(), req); err != nil {
		respondServiceError(w, err, "failed to change password")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}
