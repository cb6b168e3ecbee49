package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// CreateUserRequest represents the request for user creation
type CreateUserRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Role          string `json:"role" binding:"omitempty,oneof=admin collector resident"`
}

// UpdateUserRequest represents the request for user update
type UpdateUserRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email" binding:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Role          string `json:"role" binding:"omitempty,oneof=admin collector resident"`
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetUsers lists users
// @Summary List users
// @Description Get users with optional role filter, name search and pagination
// @Tags users
// @Accept json
// @Produce json
// @Param role query string false "Filter by role (admin, collector, resident)"
// @Param q query string false "Search by name or username"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.User} "Users retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	role := c.Query("role")
	search := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	users, total, err := h.userService.GetUsers(role, search, page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get users")
		utils.InternalServerErrorResponse(c, "Failed to get users", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Users retrieved successfully", users, page, perPage, total)
}

// GetUser retrieves a single user
// @Summary Get user by ID
// @Description Get one user record by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid user ID"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to get user")
		utils.NotFoundResponse(c, "User not found", err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// CreateUser creates a new user
// @Summary Create user
// @Description Create a household, collector or admin user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User record"
// @Success 201 {object} utils.APIResponse{data=models.User} "User created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user := &models.User{
		FullName:      req.FullName,
		Username:      req.Username,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Role:          req.Role,
	}

	if err := h.userService.CreateUser(user); err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		utils.InternalServerErrorResponse(c, "Failed to create user", err)
		return
	}

	utils.CreatedResponse(c, "User created successfully", user)
}

// UpdateUser updates an existing user
// @Summary Update user
// @Description Update an existing user record
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.User} "User updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "User not found"
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.GetUserByID(uint(id))
	if err != nil {
		utils.NotFoundResponse(c, "User not found", err)
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ContactNumber != "" {
		user.ContactNumber = req.ContactNumber
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := h.userService.UpdateUser(user); err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to update user")
		utils.InternalServerErrorResponse(c, "Failed to update user", err)
		return
	}

	utils.SuccessResponse(c, "User updated successfully", user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Delete a user record by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse "User deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid user ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}

	if err := h.userService.DeleteUser(uint(id)); err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to delete user")
		utils.InternalServerErrorResponse(c, "Failed to delete user", err)
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}
