package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type TestimonialController struct {
	TestimonialSvc *services.TestimonialService
}

func NewTestimonialController(svc *services.TestimonialService) *TestimonialController {
	return &TestimonialController{TestimonialSvc: svc}
}

// GetTestimonials (GET /api/testimonials).
func (ctrl *TestimonialController) GetTestimonials(c *gin.Context) {
	ctrl.respond(c, "Failed to fetch testimonials", ctrl.TestimonialSvc.GetApproved)
}

// GetFeaturedTestimonials (GET /api/testimonials/featured) — at most six.
func (ctrl *TestimonialController) GetFeaturedTestimonials(c *gin.Context) {
	ctrl.respond(c, "Failed to fetch featured testimonials", ctrl.TestimonialSvc.GetFeatured)
}

// GetRandomTestimonials (GET /api/testimonials/random) — three, store-side
// randomized.
func (ctrl *TestimonialController) GetRandomTestimonials(c *gin.Context) {
	ctrl.respond(c, "Failed to fetch random testimonials", ctrl.TestimonialSvc.GetRandom)
}

// GetTestimonialsByRoom (GET /api/testimonials/room/:roomId).
func (ctrl *TestimonialController) GetTestimonialsByRoom(c *gin.Context) {
	roomID, _ := strconv.Atoi(c.Param("roomId"))
	ctrl.respond(c, "Failed to fetch room testimonials", func(ctx context.Context) ([]models.Testimonial, error) {
		return ctrl.TestimonialSvc.GetByRoom(ctx, roomID)
	})
}

func (ctrl *TestimonialController) respond(c *gin.Context, message string, fetch func(context.Context) ([]models.Testimonial, error)) {
	testimonials, err := fetch(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error fetching testimonials: %v", err)
		utils.JSONInternalError(c, message, err)
		return
	}
	utils.JSONSuccessWithCount(c, http.StatusOK, testimonials, len(testimonials))
}
