package dto

import "time"

// CreateFeedRequest entrada para crear un feed Tweakwise.
type CreateFeedRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=255"`
	Token       string   `json:"token" validate:"required,max=64"`
	Integration string   `json:"integration" validate:"required,oneof=javascript pluginstudio"`
	WayOfSearch string   `json:"wayOfSearch" validate:"required,oneof=instant-search suggestions"`
	DomainIDs   []string `json:"domainIds" validate:"omitempty,dive,uuid"`
}

// UpdateFeedRequest campos opcionales; DomainIDs != nil reemplaza el conjunto completo.
type UpdateFeedRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Token       *string  `json:"token" validate:"omitempty,min=1,max=64"`
	Integration *string  `json:"integration" validate:"omitempty,oneof=javascript pluginstudio"`
	WayOfSearch *string  `json:"wayOfSearch" validate:"omitempty,oneof=instant-search suggestions"`
	DomainIDs   []string `json:"domainIds" validate:"omitempty,dive,uuid"`
}

// FeedResponse salida de un feed.
type FeedResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Token       string    `json:"token"`
	Integration string    `json:"integration"`
	WayOfSearch string    `json:"wayOfSearch"`
	DomainIDs   []string  `json:"domainIds"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeedListResponse listado paginado de feeds.
type FeedListResponse struct {
	Items []FeedResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
