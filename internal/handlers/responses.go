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
)

const loadedResponseKey = "loaded_response"

// responsePatchMessage names the updatable field set. The trailing comma
// is part of the published contract.
const responsePatchMessage = "Request body must contain 'icebergid', 'q1', 'q2', 'q3', 'q4', 'q5', 'q6', 'q7', 'q8',"

// Responses exposes the /api/responses routes. Only creation requires
// authentication.
type Responses struct {
	svc *service.Responses
}

func NewResponses(svc *service.Responses) *Responses {
	return &Responses{svc: svc}
}

// List returns every response.
func (h *Responses) List(c *gin.Context) {
	responses, err := h.svc.All()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Create inserts a response. All ten fields are required and checked in
// declaration order; the first missing one fails the request.
func (h *Responses) Create(c *gin.Context) {
	var body struct {
		UserID    *int    `json:"userid"`
		IcebergID *int    `json:"icebergid"`
		Q1        *string `json:"q1"`
		Q2        *string `json:"q2"`
		Q3        *string `json:"q3"`
		Q4        *string `json:"q4"`
		Q5        *string `json:"q5"`
		Q6        *string `json:"q6"`
		Q7        *string `json:"q7"`
		Q8        *string `json:"q8"`
	}
	if !bindBody(c, &body) {
		return
	}

	if name, missing := firstMissing(
		intField("userid", body.UserID),
		intField("icebergid", body.IcebergID),
		stringField("q1", body.Q1),
		stringField("q2", body.Q2),
		stringField("q3", body.Q3),
		stringField("q4", body.Q4),
		stringField("q5", body.Q5),
		stringField("q6", body.Q6),
		stringField("q7", body.Q7),
		stringField("q8", body.Q8),
	); missing {
		c.JSON(http.StatusBadRequest, errorMessage(fmt.Sprintf("Missing '%s' in request body", name)))
		return
	}

	response, err := h.svc.Insert(models.NewResponse{
		UserID:    *body.UserID,
		IcebergID: *body.IcebergID,
		Q1:        *body.Q1,
		Q2:        *body.Q2,
		Q3:        *body.Q3,
		Q4:        *body.Q4,
		Q5:        *body.Q5,
		Q6:        *body.Q6,
		Q7:        *body.Q7,
		Q8:        *body.Q8,
	})
	if err != nil {
		storeError(c, err)
		return
	}

	c.Header("Location", path.Join(c.Request.URL.Path, strconv.Itoa(response.ID)))
	c.JSON(http.StatusCreated, response)
}

// RequireResponse resolves the :response_id parameter and attaches the
// loaded row, short-circuiting with 404 when no such response exists.
func (h *Responses) RequireResponse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("response_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("Response doesn't exist"))
		return
	}

	response, err := h.svc.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorMessage("Response doesn't exist"))
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}

	c.Set(loadedResponseKey, response)
	c.Next()
}

// Get returns the loaded response with all ten fields.
func (h *Responses) Get(c *gin.Context) {
	response := c.MustGet(loadedResponseKey).(models.Response)
	c.JSON(http.StatusOK, response)
}

// Delete removes the loaded response.
func (h *Responses) Delete(c *gin.Context) {
	response := c.MustGet(loadedResponseKey).(models.Response)
	if _, err := h.svc.Delete(response.ID); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch applies a partial update across the updatable field whitelist;
// at least one field must carry a truthy value.
func (h *Responses) Patch(c *gin.Context) {
	var body struct {
		IcebergID *int    `json:"icebergid"`
		Q1        *string `json:"q1"`
		Q2        *string `json:"q2"`
		Q3        *string `json:"q3"`
		Q4        *string `json:"q4"`
		Q5        *string `json:"q5"`
		Q6        *string `json:"q6"`
		Q7        *string `json:"q7"`
		Q8        *string `json:"q8"`
	}
	if !bindBody(c, &body) {
		return
	}

	if countTruthy(
		intField("icebergid", body.IcebergID),
		stringField("q1", body.Q1),
		stringField("q2", body.Q2),
		stringField("q3", body.Q3),
		stringField("q4", body.Q4),
		stringField("q5", body.Q5),
		stringField("q6", body.Q6),
		stringField("q7", body.Q7),
		stringField("q8", body.Q8),
	) == 0 {
		c.JSON(http.StatusBadRequest, errorMessage(responsePatchMessage))
		return
	}

	response := c.MustGet(loadedResponseKey).(models.Response)
	if _, err := h.svc.Update(response.ID, models.ResponseUpdate{
		IcebergID: body.IcebergID,
		Q1:        body.Q1,
		Q2:        body.Q2,
		Q3:        body.Q3,
		Q4:        body.Q4,
		Q5:        body.Q5,
		Q6:        body.Q6,
		Q7:        body.Q7,
		Q8:        body.Q8,
	}); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
