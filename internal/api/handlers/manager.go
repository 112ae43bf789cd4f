package handlers

import (
	"errors"
	"net/http"

	"okr-tracker-backend/internal/auth"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ManagerHandler handles HTTP requests for the manager surface: the manager
// dashboard and objective/key-result administration on managed teams
type ManagerHandler struct {
	managerService   service.ManagerServiceInterface
	objectiveService service.ObjectiveServiceInterface
	keyResultService service.KeyResultServiceInterface
}

// NewManagerHandler creates a new manager handler
func NewManagerHandler(managerService service.ManagerServiceInterface, objectiveService service.ObjectiveServiceInterface, keyResultService service.KeyResultServiceInterface) *ManagerHandler {
	return &ManagerHandler{
		managerService:   managerService,
		objectiveService: objectiveService,
		keyResultService: keyResultService,
	}
}

// GetDashboard handles GET /manager/dashboard
// @Summary Manager dashboard
// @Description Get rollups for the caller's managed teams, recent team activity and the newest progress updates
// @Tags manager
// @Accept json
// @Produce json
// @Success 200 {object} service.ManagerDashboard "Manager dashboard"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/dashboard [get]
func (h *ManagerHandler) GetDashboard(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	dashboard, err := h.managerService.GetDashboard(identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// CreateObjective handles POST /manager/objectives
// @Summary Create an objective
// @Description Create an objective on a team the caller manages
// @Tags manager
// @Accept json
// @Produce json
// @Param objective body service.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} service.ObjectiveResponse "Successfully created objective"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/objectives [post]
func (h *ManagerHandler) CreateObjective(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objective, err := h.objectiveService.Create(identity.ID, &req)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// ListObjectives handles GET /manager/teams/:id/objectives
// @Summary List a managed team's objectives
// @Description Get the objectives of one team the caller manages
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.ObjectiveResponse "Objectives"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/teams/{id}/objectives [get]
func (h *ManagerHandler) ListObjectives(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	objectives, err := h.objectiveService.ListForTeam(identity.ID, teamID)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// GetObjectiveDetail handles GET /manager/objectives/:id
// @Summary Objective detail
// @Description Get the full objective view: team, members, key results with derived progress, due-date countdowns, stored and computed status
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} service.ObjectiveDetail "Objective detail"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/objectives/{id} [get]
func (h *ManagerHandler) GetObjectiveDetail(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid objective ID"})
		return
	}

	detail, err := h.objectiveService.GetDetail(identity.ID, id)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateObjective handles PUT /manager/objectives/:id
// @Summary Update an objective
// @Description Update an objective's fields; the stored status only changes when set explicitly
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateObjectiveRequest true "Objective data"
// @Success 200 {object} service.ObjectiveResponse "Successfully updated objective"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/objectives/{id} [put]
func (h *ManagerHandler) UpdateObjective(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid objective ID"})
		return
	}

	var req service.UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objective, err := h.objectiveService.Update(identity.ID, id, &req)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusOK, objective)
}

// DeleteObjective handles DELETE /manager/objectives/:id
// @Summary Delete an objective
// @Description Delete an objective and its key results
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 204 "Successfully deleted objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/objectives/{id} [delete]
func (h *ManagerHandler) DeleteObjective(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid objective ID"})
		return
	}

	if err := h.objectiveService.Delete(identity.ID, id); err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateKeyResult handles POST /manager/key-results
// @Summary Create a key result
// @Description Create a key result under an objective on a team the caller manages
// @Tags manager
// @Accept json
// @Produce json
// @Param keyResult body service.CreateKeyResultRequest true "Key result data"
// @Success 201 {object} service.KeyResultResponse "Successfully created key result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/key-results [post]
func (h *ManagerHandler) CreateKeyResult(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateKeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keyResult, err := h.keyResultService.Create(identity.ID, &req)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, keyResult)
}

// UpdateKeyResult handles PUT /manager/key-results/:id
// @Summary Update a key result
// @Description Update a key result's title, target and due date
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Param keyResult body service.UpdateKeyResultRequest true "Key result data"
// @Success 200 {object} service.KeyResultResponse "Successfully updated key result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/key-results/{id} [put]
func (h *ManagerHandler) UpdateKeyResult(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key result ID"})
		return
	}

	var req service.UpdateKeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keyResult, err := h.keyResultService.Update(identity.ID, id, &req)
	if err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.JSON(http.StatusOK, keyResult)
}

// DeleteKeyResult handles DELETE /manager/key-results/:id
// @Summary Delete a key result
// @Description Delete a key result and its update log entries
// @Tags manager
// @Accept json
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Success 204 "Successfully deleted key result"
// @Failure 400 {object} map[string]interface{} "Invalid key result ID"
// @Failure 403 {object} map[string]interface{} "Caller does not manage the team"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /manager/key-results/{id} [delete]
func (h *ManagerHandler) DeleteKeyResult(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key result ID"})
		return
	}

	if err := h.keyResultService.Delete(identity.ID, id); err != nil {
		h.respondObjectiveError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondObjectiveError maps objective and key-result service errors to HTTP
// statuses
func (h *ManagerHandler) respondObjectiveError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotTeamManager):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
