package models

import "time"

// Event is a university happening ('events' table).
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"event_name"`
	Type        string    `json:"type" db:"event_type"`
	Date        time.Time `json:"date" db:"event_date"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	Organizer   string    `json:"organizer" db:"organizer"`
}

// EventRegistration joins any user to an event, unique per pair.
type EventRegistration struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
	Status       string    `json:"status" db:"status"`
}

// Announcement is an administrative broadcast, no relations.
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
