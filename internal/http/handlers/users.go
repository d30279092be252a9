package handlers

import (
	"net/http"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/geocoder89/userdesk/internal/http/middlewares"
	"github.com/geocoder89/userdesk/internal/render"
	"github.com/geocoder89/userdesk/internal/view"
	"github.com/gin-gonic/gin"
)

type UserListView interface {
	Snapshot() view.Snapshot
	User(id int) (user.User, error)
	Edit(id int) (view.Snapshot, error)
	Delete(id int) (view.Snapshot, error)
	SetField(name, value string) (view.Snapshot, error)
	Submit() (view.Snapshot, *user.User, error)
	Cancel() (view.Snapshot, error)
}

type UsersHandler struct {
	view UserListView
}

func NewUsersHandler(v UserListView) *UsersHandler {
	return &UsersHandler{view: v}
}

type listResponse struct {
	view.Snapshot
	Count int `json:"count"`
}

type submitResponse struct {
	Created *user.User   `json:"created,omitempty"`
	State   listResponse `json:"state"`
}

type SetFieldRequest struct {
	Name  string  `json:"name" binding:"required,oneof=firstName lastName email gender age company.name"`
	Value *string `json:"value" binding:"required"`
}

func stateOf(snap view.Snapshot) listResponse {
	return listResponse{Snapshot: snap, Count: len(snap.Users)}
}

// Page renders the whole view as HTML.
func (h *UsersHandler) Page(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, render.PageTemplateName, render.Page(h.view.Snapshot()))
}

// PageScript serves the script the page loads from render.ScriptPath.
func (h *UsersHandler) PageScript(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-cache")
	ctx.Data(http.StatusOK, "text/javascript; charset=utf-8", render.Script)
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	RespondJSONWithETag(ctx, http.StatusOK, stateOf(h.view.Snapshot()))
}

func (h *UsersHandler) GetUser(ctx *gin.Context) {
	id, ok := bindUserID(ctx)
	if !ok {
		return
	}

	u, err := h.view.User(id)
	if err != nil {
		RespondViewError(ctx, err)
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, u)
}

func (h *UsersHandler) EditUser(ctx *gin.Context) {
	id, ok := bindUserID(ctx)
	if !ok {
		return
	}
	ctx.Set(middlewares.CtxUserID, id)

	snap, err := h.view.Edit(id)
	if err != nil {
		RespondViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stateOf(snap))
}

// DeleteUser answers 204 whether or not the id was present.
func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id, ok := bindUserID(ctx)
	if !ok {
		return
	}
	ctx.Set(middlewares.CtxUserID, id)

	if _, err := h.view.Delete(id); err != nil {
		RespondViewError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *UsersHandler) SetField(ctx *gin.Context) {
	var req SetFieldRequest

	if !BindJSON(ctx, &req) {
		return
	}

	snap, err := h.view.SetField(req.Name, *req.Value)
	if err != nil {
		RespondViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stateOf(snap))
}

// Submit creates (201) or updates (200) depending on the form mode.
func (h *UsersHandler) Submit(ctx *gin.Context) {
	snap, created, err := h.view.Submit()
	if err != nil {
		RespondViewError(ctx, err)
		return
	}

	if created != nil {
		ctx.Set(middlewares.CtxUserID, created.ID)
		ctx.JSON(http.StatusCreated, submitResponse{Created: created, State: stateOf(snap)})
		return
	}

	ctx.JSON(http.StatusOK, submitResponse{State: stateOf(snap)})
}

func (h *UsersHandler) Cancel(ctx *gin.Context) {
	snap, err := h.view.Cancel()
	if err != nil {
		RespondViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stateOf(snap))
}
