package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// AnnouncementRequest represents the request for announcement creation/update
type AnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// AnnouncementHandler handles announcement-related HTTP requests
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// GetAnnouncements lists announcements
// @Summary List announcements
// @Description Get announcements ordered newest first, with pagination
// @Tags announcements
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Announcement} "Announcements retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	announcements, total, err := h.announcementService.GetAnnouncements(page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get announcements")
		utils.InternalServerErrorResponse(c, "Failed to get announcements", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Announcements retrieved successfully", announcements, page, perPage, total)
}

// CreateAnnouncement creates a new announcement
// @Summary Create announcement
// @Description Post a new announcement to residents
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body AnnouncementRequest true "Announcement"
// @Success 201 {object} utils.APIResponse{data=models.Announcement} "Announcement created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	announcement := &models.Announcement{
		Title: req.Title,
		Body:  req.Body,
	}

	if err := h.announcementService.CreateAnnouncement(announcement); err != nil {
		h.logger.WithError(err).Error("Failed to create announcement")
		utils.InternalServerErrorResponse(c, "Failed to create announcement", err)
		return
	}

	utils.CreatedResponse(c, "Announcement created successfully", announcement)
}

// UpdateAnnouncement updates an existing announcement
// @Summary Update announcement
// @Description Update the title and body of an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body AnnouncementRequest true "Announcement"
// @Success 200 {object} utils.APIResponse "Announcement updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid announcement ID", err)
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	announcement := &models.Announcement{
		ID:    uint(id),
		Title: req.Title,
		Body:  req.Body,
	}

	if err := h.announcementService.UpdateAnnouncement(announcement); err != nil {
		h.logger.WithError(err).WithField("announcement_id", id).Error("Failed to update announcement")
		utils.InternalServerErrorResponse(c, "Failed to update announcement", err)
		return
	}

	utils.SuccessResponse(c, "Announcement updated successfully", announcement)
}

// DeleteAnnouncement deletes an announcement
// @Summary Delete announcement
// @Description Delete an announcement by ID
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse "Announcement deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid announcement ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid announcement ID", err)
		return
	}

	if err := h.announcementService.DeleteAnnouncement(uint(id)); err != nil {
		h.logger.WithError(err).WithField("announcement_id", id).Error("Failed to delete announcement")
		utils.InternalServerErrorResponse(c, "Failed to delete announcement", err)
		return
	}

	utils.SuccessResponse(c, "Announcement deleted successfully", nil)
}
