package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/middleware"
	"github.com/MarliRenee/aware-api/internal/models"
	"github.com/MarliRenee/aware-api/internal/service"
)

const loadedIcebergKey = "loaded_iceberg"

// Icebergs exposes the /api/icebergs routes. Every route sits behind the
// basic-auth gate.
type Icebergs struct {
	svc *service.Icebergs
}

func NewIcebergs(svc *service.Icebergs) *Icebergs {
	return &Icebergs{svc: svc}
}

// List returns every iceberg. The list is not scoped to the
// authenticated user.
func (h *Icebergs) List(c *gin.Context) {
	icebergs, err := h.svc.All()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, icebergs)
}

// Create inserts an iceberg owned by the authenticated user. The request
// body is not consulted; ownership always comes from the credential the
// gate verified.
func (h *Icebergs) Create(c *gin.Context) {
	authUser, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized request"})
		return
	}

	iceberg, err := h.svc.Insert(models.NewIceberg{UserID: authUser.ID})
	if err != nil {
		storeError(c, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.Itoa(iceberg.ID)))
	c.JSON(http.StatusCreated, iceberg)
}

// RequireIceberg resolves the :iceberg_id parameter and attaches the
// loaded row, short-circuiting with 404 when no such iceberg exists.
func (h *Icebergs) RequireIceberg(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("iceberg_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("Iceberg doesn't exist"))
		return
	}

	iceberg, err := h.svc.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("Iceberg doesn't exist"))
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}

	c.Set(loadedIcebergKey, iceberg)
	c.Next()
}

// Get returns the loaded iceberg's id and modified timestamp. The owner
// id is deliberately not exposed.
func (h *Icebergs) Get(c *gin.Context) {
	iceberg := c.MustGet(loadedIcebergKey).(models.Iceberg)
	c.JSON(http.StatusOK, gin.H{
		"id":       iceberg.ID,
		"modified": iceberg.Modified,
	})
}

// Delete removes the loaded iceberg.
func (h *Icebergs) Delete(c *gin.Context) {
	iceberg := c.MustGet(loadedIcebergKey).(models.Iceberg)
	if _, err := h.svc.Delete(iceberg.ID); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch reassigns the loaded iceberg's owner; userid is the only
// updatable field and must carry a truthy value.
func (h *Icebergs) Patch(c *gin.Context) {
	var body struct {
		UserID *int `json:"userid"`
	}
	if !bindBody(c, &body) {
		return
	}

	if countTruthy(intField("userid", body.UserID)) == 0 {
		c.JSON(http.StatusBadRequest, errorMessage("Request body must contain 'userid'"))
		return
	}

	iceberg := c.MustGet(loadedIcebergKey).(models.Iceberg)
	if _, err := h.svc.Update(iceberg.ID, models.IcebergUpdate{UserID: body.UserID}); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
