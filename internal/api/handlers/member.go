package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"okr-tracker-backend/internal/auth"
	apperrors "okr-tracker-backend/internal/errors"
	"okr-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for the member surface: the member
// dashboard, personal objectives, progress reporting and the update feed
type MemberHandler struct {
	memberService    service.MemberServiceInterface
	keyResultService service.KeyResultServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface, keyResultService service.KeyResultServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService:    memberService,
		keyResultService: keyResultService,
	}
}

// GetDashboard handles GET /member/dashboard
// @Summary Member dashboard
// @Description Get the caller's teams, objectives with derived progress and personal status, and summary figures
// @Tags member
// @Accept json
// @Produce json
// @Success 200 {object} service.MemberDashboard "Member dashboard"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Failure 503 {object} map[string]interface{} "Data store unavailable"
// @Security BearerAuth
// @Router /member/dashboard [get]
func (h *MemberHandler) GetDashboard(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	dashboard, err := h.memberService.GetDashboard(identity.ID)
	if err != nil {
		if apperrors.IsUnavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// ListObjectives handles GET /member/objectives
// @Summary List personal objectives
// @Description Get every objective of the caller's teams with derived progress and personal status
// @Tags member
// @Accept json
// @Produce json
// @Success 200 {array} service.PersonalObjective "Objectives"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /member/objectives [get]
func (h *MemberHandler) ListObjectives(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	objectives, err := h.memberService.ListObjectives(identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// UpdateProgress handles PUT /member/key-results/:id/progress
// @Summary Report progress against a key result
// @Description Set a key result's current value; the update is also appended to the caller's update log
// @Tags member
// @Accept json
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Param progress body service.UpdateProgressRequest true "Progress data"
// @Success 200 {object} service.KeyResultResponse "Updated key result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 403 {object} map[string]interface{} "Caller is not a member of the owning team"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /member/key-results/{id}/progress [put]
func (h *MemberHandler) UpdateProgress(c *gin.Context) {
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

	var req service.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keyResult, err := h.keyResultService.UpdateProgress(identity.ID, id, &req)
	if err != nil {
		switch {
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMembershipNotFound):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, keyResult)
}

// GetUpdates handles GET /member/updates
// @Summary Update history
// @Description Get the caller's newest progress updates with the change type relative to current stored progress
// @Tags member
// @Accept json
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} service.UpdateFeedEntry "Update feed"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /member/updates [get]
func (h *MemberHandler) GetUpdates(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	updates, err := h.memberService.GetUpdates(identity.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updates)
}
