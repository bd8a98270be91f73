package services

import (
	"errors"
	"math/rand"

	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/models"

	"gorm.io/gorm"
)

type CardService struct {
	db *gorm.DB
}

func NewCardService(db *gorm.DB) *CardService {
	return &CardService{db: db}
}

func (s *CardService) ListCards() ([]models.Card, error) {
	var cards []models.Card
	if err := s.db.Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CardService) GetCard(cardID uint) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		return nil, errors.New("card not found")
	}
	return &card, nil
}

// RandomCard picks a card for the "sorpréndeme" flow.
func (s *CardService) RandomCard() (*models.Card, error) {
	cards, err := s.ListCards()
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, errors.New("no cards available")
	}
	card := cards[rand.Intn(len(cards))]
	return &card, nil
}

func (s *CardService) CreateCard(hostID uint, name, description, mode string, variables models.JSONMap) (*models.Card, error) {
	if name == "" {
		return nil, errors.New("card name is required")
	}
	card := models.Card{
		HostID:      hostID,
		Name:        name,
		Description: description,
		Mode:        models.NormalizeMode(mode),
		Variables:   variables,
	}
	if err := s.db.Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *CardService) UpdateCard(cardID uint, name, description, mode string, variables models.JSONMap) (*models.Card, error) {
	card, err := s.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		card.Name = name
	}
	if description != "" {
		card.Description = description
	}
	if mode != "" {
		card.Mode = models.NormalizeMode(mode)
	}
	if variables != nil {
		card.Variables = variables
	}
	if err := s.db.Save(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) DeleteCard(cardID uint) error {
	return s.db.Delete(&models.Card{}, cardID).Error
}

// ToGameCard converts a stored card into the in-round representation.
func ToGameCard(card *models.Card) game.Card {
	return game.Card{
		ID:          card.ID,
		Name:        card.Name,
		Description: card.Description,
		Mode:        game.ParseMode(card.Mode),
		Variables:   card.Variables,
	}
}

// SeedDefaults inserts the base deck when the cards table is empty.
func (s *CardService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.Card{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Card{
		{
			Name:        "El Delulu",
			Description: "Confiesa tu teoría más delulu sobre tu crush",
			Mode:        models.CardModeIndividual,
			Variables:   models.JSONMap{"intensidad": "media", "tema": "crush"},
		},
		{
			Name:        "El Ghosteador VIP",
			Description: "Responde el mensaje que dejaste en visto hace meses",
			Mode:        models.CardModeDuo,
			Variables:   models.JSONMap{"intensidad": "alta", "tema": "ex"},
		},
		{
			Name:        "El Storytoxic",
			Description: "Escribe el caption más tóxico para tu próxima story",
			Mode:        models.CardModeGroup,
			Variables:   models.JSONMap{"intensidad": "alta", "tema": "redes"},
		},
		{
			Name:        "El Add to Cart",
			Description: "Justifica tu compra más impulsiva de las 3 AM",
			Mode:        models.CardModeIndividual,
			Variables:   models.JSONMap{"intensidad": "baja", "tema": "compras"},
		},
	}
	return s.db.Create(&defaults).Error
}
