package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MesaService struct {
	db *gorm.DB
}

func NewMesaService(db *gorm.DB) *MesaService {
	return &MesaService{db: db}
}

var palabrasDivertidas = []string{
	"fiesta", "brindis", "shot", "copa", "mesa",
	"delulu", "chisme", "drama", "vibra", "rizz",
}

func (s *MesaService) CreateMesa(name string) (*models.Mesa, error) {
	if name == "" {
		name = "Mesa sin nombre"
	}
	code := s.generateUniqueCode()
	mesa := models.Mesa{
		Code:   code,
		Name:   name,
		Status: models.MesaStatusActive,
	}
	if err := s.db.Create(&mesa).Error; err != nil {
		return nil, err
	}
	return &mesa, nil
}

func (s *MesaService) GetMesa(mesaID uint) (*models.Mesa, error) {
	var mesa models.Mesa
	if err := s.db.Preload("Members").First(&mesa, mesaID).Error; err != nil {
		return nil, errors.New("mesa not found")
	}
	return &mesa, nil
}

func (s *MesaService) GetMesaByCode(code string) (*models.Mesa, error) {
	var mesa models.Mesa
	if err := s.db.Where("code = ? AND status = ?", code, models.MesaStatusActive).
		Preload("Members").First(&mesa).Error; err != nil {
		return nil, errors.New("mesa not found or closed")
	}
	return &mesa, nil
}

func (s *MesaService) JoinMesa(code, nickname, vibe, webToken string) (*MesaJoinResult, error) {
	mesa, err := s.GetMesaByCode(code)
	if err != nil {
		return nil, err
	}
	if nickname == "" {
		return nil, errors.New("nickname is required")
	}

	var existing models.MesaMember
	if webToken != "" {
		if err := s.db.Where("mesa_id = ? AND web_token = ?", mesa.ID, webToken).
			First(&existing).Error; err == nil {
			if nickname != existing.Nickname {
				existing.Nickname = nickname
				s.db.Save(&existing)
			}
			return &MesaJoinResult{Mesa: *mesa, Member: existing, IsRejoin: true}, nil
		}
	}

	if vibe == "" {
		vibe = "delulu"
	}
	member := models.MesaMember{
		MesaID:   mesa.ID,
		Nickname: nickname,
		WebToken: uuid.NewString(),
		Vibe:     vibe,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, fmt.Errorf("failed to join mesa: %w", err)
	}

	return &MesaJoinResult{Mesa: *mesa, Member: member}, nil
}

func (s *MesaService) Reconnect(webToken, code string) (*MesaJoinResult, error) {
	mesa, err := s.GetMesaByCode(code)
	if err != nil {
		return nil, err
	}

	var member models.MesaMember
	if err := s.db.Where("mesa_id = ? AND web_token = ?", mesa.ID, webToken).
		First(&member).Error; err != nil {
		return nil, errors.New("member not found")
	}

	return &MesaJoinResult{Mesa: *mesa, Member: member, IsRejoin: true}, nil
}

func (s *MesaService) ListMembers(mesaID uint) ([]models.MesaMember, error) {
	var members []models.MesaMember
	s.db.Where("mesa_id = ?", mesaID).Order("joined_at ASC").Find(&members)
	return members, nil
}

// Roster returns the members of a mesa in join order as game players.
func (s *MesaService) Roster(mesaID uint) ([]game.Player, error) {
	members, err := s.ListMembers(mesaID)
	if err != nil {
		return nil, err
	}
	roster := make([]game.Player, 0, len(members))
	for _, m := range members {
		roster = append(roster, game.Player{ID: m.ID, Nickname: m.Nickname})
	}
	return roster, nil
}

func (s *MesaService) GetMemberByToken(mesaID uint, webToken string) (*models.MesaMember, error) {
	var member models.MesaMember
	if err := s.db.Where("mesa_id = ? AND web_token = ?", mesaID, webToken).
		First(&member).Error; err != nil {
		return nil, errors.New("member not found")
	}
	return &member, nil
}

func (s *MesaService) AddPoints(memberID uint, delta int) error {
	return s.db.Model(&models.MesaMember{}).
		Where("id = ?", memberID).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

func (s *MesaService) Leaderboard(mesaID uint) ([]models.MesaMember, error) {
	var members []models.MesaMember
	if err := s.db.Where("mesa_id = ?", mesaID).
		Order("points DESC, joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// LeaveMesa removes a member's seat. Rounds already running keep their
// frozen roster; the member simply stops appearing in future rounds.
func (s *MesaService) LeaveMesa(mesaID, memberID uint) error {
	result := s.db.Where("mesa_id = ?", mesaID).Delete(&models.MesaMember{}, memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("member not found")
	}
	return nil
}

func (s *MesaService) CloseMesa(mesaID uint) error {
	var mesa models.Mesa
	if err := s.db.First(&mesa, mesaID).Error; err != nil {
		return errors.New("mesa not found")
	}
	mesa.Status = models.MesaStatusClosed
	s.db.Save(&mesa)
	return nil
}

func (s *MesaService) generateUniqueCode() string {
	for {
		code := fmt.Sprintf("%s-%s-%02d",
			palabrasDivertidas[rand.Intn(len(palabrasDivertidas))],
			palabrasDivertidas[rand.Intn(len(palabrasDivertidas))],
			rand.Intn(100))
		var count int64
		s.db.Model(&models.Mesa{}).
			Where("code = ? AND status = ?", code, models.MesaStatusActive).
			Count(&count)
		if count == 0 {
			return code
		}
	}
}

type MesaJoinResult struct {
	Mesa     models.Mesa       `json:"mesa"`
	Member   models.MesaMember `json:"member"`
	IsRejoin bool              `json:"is_rejoin"`
}
