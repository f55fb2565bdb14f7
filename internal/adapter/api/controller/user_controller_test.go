package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
)

func userRouter(c *UserController, uid, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(auth.ContextUserID, uid)
		ctx.Set(auth.ContextRole, role)
	})
	r.PUT("/usuarios/:id", c.Update)
	return r
}

func TestUserController_Update_OtherUserForbidden(t *testing.T) {
	updated := false
	repo := &fakeUserRepo{update: func(u *userdomain.User) error {
		updated = true
		return nil
	}}
	ctrl := NewUserController(repo, nopLogger{})

	r := userRouter(ctrl, "u2", string(userdomain.RoleClient))
	w := performRequest(r, http.MethodPut, "/usuarios/u1", `{"nome":"Novo Nome"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, updated)
}

func TestUserController_Update_SelfCannotChangeStatus(t *testing.T) {
	updated := false
	repo := &fakeUserRepo{update: func(u *userdomain.User) error {
		updated = true
		return nil
	}}
	ctrl := NewUserController(repo, nopLogger{})

	r := userRouter(ctrl, "u1", string(userdomain.RoleClient))
	w := performRequest(r, http.MethodPut, "/usuarios/u1", `{"status":"inativo"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, updated)
}

func TestUserController_Update_SelfCannotChangeRole(t *testing.T) {
	repo := &fakeUserRepo{}
	ctrl := NewUserController(repo, nopLogger{})

	r := userRouter(ctrl, "u1", string(userdomain.RoleClient))
	w := performRequest(r, http.MethodPut, "/usuarios/u1", `{"tipo":"admin"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserController_Update_SelfUpdatesProfile(t *testing.T) {
	var saved *userdomain.User
	repo := &fakeUserRepo{update: func(u *userdomain.User) error {
		saved = u
		return nil
	}}
	ctrl := NewUserController(repo, nopLogger{})

	r := userRouter(ctrl, "u1", string(userdomain.RoleClient))
	w := performRequest(r, http.MethodPut, "/usuarios/u1", `{"nome":"Novo Nome"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, saved) {
		assert.Equal(t, "Novo Nome", saved.Name)
	}
}

func TestUserController_Update_AdminChangesStatus(t *testing.T) {
	var saved *userdomain.User
	repo := &fakeUserRepo{update: func(u *userdomain.User) error {
		saved = u
		return nil
	}}
	ctrl := NewUserController(repo, nopLogger{})

	r := userRouter(ctrl, "admin-1", string(userdomain.RoleAdmin))
	w := performRequest(r, http.MethodPut, "/usuarios/u1", `{"status":"inativo"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, saved) {
		assert.Equal(t, userdomain.StatusInactive, saved.Status)
	}
}
