package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// GetUserByID (GET /api/users/:id) returns the account projection without
// the password hash.
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	user, err := ctrl.UserSvc.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrUserNotFound) {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("❌ Error fetching user %d: %v", id, err)
		utils.JSONInternalError(c, "Failed to fetch user", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
