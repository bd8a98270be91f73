package handlers

import (
	"mesa-game-backend/internal/models"
	"mesa-game-backend/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Mesa = models.Mesa
type MesaMember = models.MesaMember
type Card = models.Card
type Reward = models.Reward
type Session = services.Session
