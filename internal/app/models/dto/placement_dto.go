package dto

import (
	"time"

	"github.com/emre/uniportal/internal/app/models"
)

// RegisteredDrive is a drive the student already signed up for.
type RegisteredDrive struct {
	models.PlacementDrive
	RegisteredAt       time.Time `json:"registeredAt"`
	RegistrationStatus string    `json:"registrationStatus"`
}

// PlacementsResponse is the student placement portal payload.
type PlacementsResponse struct {
	Student          *StudentInfo             `json:"student"`
	Companies        []*models.Company        `json:"companies"`
	EligibleDrives   []*models.PlacementDrive `json:"eligibleDrives"`
	RegisteredDrives []*RegisteredDrive       `json:"registeredDrives"`
	AllDrives        []*models.PlacementDrive `json:"allDrives"`
}

// RegisteredEvent is an event the user already signed up for.
type RegisteredEvent struct {
	models.Event
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventsResponse is the events page payload.
type EventsResponse struct {
	Upcoming   []*models.Event    `json:"upcoming"`
	Past       []*models.Event    `json:"past"`
	Registered []*RegisteredEvent `json:"registered"`
}

// CreateAnnouncementRequest creates an administrative broadcast.
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}
