package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/models"
	"github.com/MarliRenee/aware-api/internal/service"
	"github.com/MarliRenee/aware-api/internal/utils"
)

const loadedUserKey = "loaded_user"

// Users exposes the /api/users routes.
type Users struct {
	svc *service.Users
}

func NewUsers(svc *service.Users) *Users {
	return &Users{svc: svc}
}

// List returns every user.
func (h *Users) List(c *gin.Context) {
	users, err := h.svc.All()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create inserts a user from the required username/password fields and
// answers 201 with a Location header for the new row.
func (h *Users) Create(c *gin.Context) {
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if !bindBody(c, &body) {
		return
	}

	if name, missing := firstMissing(
		stringField("username", body.Username),
		stringField("password", body.Password),
	); missing {
		c.JSON(http.StatusBadRequest, errorMessage(fmt.Sprintf("Missing '%s' in request body", name)))
		return
	}

	user, err := h.svc.Insert(models.NewUser{
		Username: *body.Username,
		Password: *body.Password,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.Itoa(user.ID)))
	c.JSON(http.StatusCreated, user)
}

// RequireUser resolves the :user_id parameter and attaches the loaded
// row, short-circuiting with 404 when no such user exists.
func (h *Users) RequireUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("User doesn't exist"))
		return
	}

	user, err := h.svc.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("User doesn't exist"))
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}

	c.Set(loadedUserKey, user)
	c.Next()
}

// Get returns the loaded user with markup in the text fields neutralized.
func (h *Users) Get(c *gin.Context) {
	user := c.MustGet(loadedUserKey).(models.User)
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": utils.Sanitize(user.Username),
		"password": utils.Sanitize(user.Password),
	})
}

// Delete removes the loaded user.
func (h *Users) Delete(c *gin.Context) {
	user := c.MustGet(loadedUserKey).(models.User)
	if _, err := h.svc.Delete(user.ID); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch applies a partial update; at least one whitelisted field must
// carry a truthy value.
func (h *Users) Patch(c *gin.Context) {
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if !bindBody(c, &body) {
		return
	}

	if countTruthy(
		stringField("username", body.Username),
		stringField("password", body.Password),
	) == 0 {
		c.JSON(http.StatusBadRequest, errorMessage("Request body must contain either 'username' or 'password'"))
		return
	}

	user := c.MustGet(loadedUserKey).(models.User)
	if _, err := h.svc.Update(user.ID, models.UserUpdate{
		Username: body.Username,
		Password: body.Password,
	}); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
