package services

import (
	"context"

	"hostel-backend/models"

	"gorm.io/gorm"
)

const testimonialColumns = `
	id,
	customer_name,
	customer_name_th,
	customer_nationality,
	customer_avatar_url,
	room_id,
	booking_id,
	overall_rating,
	cleanliness_rating,
	location_rating,
	value_rating,
	service_rating,
	title,
	title_th,
	comment,
	comment_th,
	stay_date,
	is_verified,
	is_approved,
	is_featured,
	created_at,
	updated_at`

// TestimonialService wraps *gorm.DB for review reads. Every query filters
// on is_approved = true; unapproved rows never leave the store.
type TestimonialService struct {
	DB *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{DB: db}
}

// GetApproved returns all approved testimonials, featured ones first.
func (s *TestimonialService) GetApproved(ctx context.Context) ([]models.Testimonial, error) {
	return s.scan(ctx, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE is_approved = true
		ORDER BY is_featured DESC, created_at DESC`)
}

// GetFeatured returns up to six featured testimonials, newest first.
func (s *TestimonialService) GetFeatured(ctx context.Context) ([]models.Testimonial, error) {
	return s.scan(ctx, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE is_approved = true AND is_featured = true
		ORDER BY created_at DESC
		LIMIT 6`)
}

// GetRandom returns three store-side random approved testimonials.
func (s *TestimonialService) GetRandom(ctx context.Context) ([]models.Testimonial, error) {
	return s.scan(ctx, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE is_approved = true
		ORDER BY RAND()
		LIMIT 3`)
}

// GetByRoom returns the approved testimonials for one room, newest first.
func (s *TestimonialService) GetByRoom(ctx context.Context, roomID int) ([]models.Testimonial, error) {
	return s.scan(ctx, `
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE is_approved = true AND room_id = ?
		ORDER BY created_at DESC`, roomID)
}

func (s *TestimonialService) scan(ctx context.Context, query string, args ...interface{}) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	err := s.DB.WithContext(ctx).Raw(query, args...).Scan(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}
