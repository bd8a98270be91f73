package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/models"

	"gorm.io/gorm"
)

const rewardCount = 3

// RewardCatalog is the query surface the resolver needs; keeping it narrow
// lets tests swap in a fake without a database.
type RewardCatalog interface {
	ByCategory(name string) ([]models.Reward, error)
	All() ([]models.Reward, error)
}

type GormRewardCatalog struct {
	db *gorm.DB
}

func NewGormRewardCatalog(db *gorm.DB) *GormRewardCatalog {
	return &GormRewardCatalog{db: db}
}

func (c *GormRewardCatalog) ByCategory(name string) ([]models.Reward, error) {
	var category models.RewardCategory
	if err := c.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var rewards []models.Reward
	if err := c.db.Where("category_id = ?", category.ID).Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (c *GormRewardCatalog) All() ([]models.Reward, error) {
	var rewards []models.Reward
	if err := c.db.Limit(100).Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

// RewardService resolves a completed round into exactly three reward
// descriptors and records grants. Resolution never fails outward: a missing
// or broken catalog degrades to the built-in generic pools.
type RewardService struct {
	db      *gorm.DB
	catalog RewardCatalog
}

func NewRewardService(db *gorm.DB, catalog RewardCatalog) *RewardService {
	return &RewardService{db: db, catalog: catalog}
}

func (s *RewardService) Resolve(ctx context.Context, analysis *game.Analysis) []game.Reward {
	category := DefaultRewardCategory
	if analysis != nil && analysis.Category != "" {
		category = analysis.Category
	}

	pool := s.candidatePool(category)
	if len(pool) == 0 {
		return genericRewards()
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > rewardCount {
		pool = pool[:rewardCount]
	}

	out := make([]game.Reward, 0, len(pool))
	for _, r := range pool {
		out = append(out, normalizeReward(r))
	}
	return out
}

// candidatePool combines the category's rewards with the rest of the
// catalog when the category alone cannot fill a full set.
func (s *RewardService) candidatePool(category string) []models.Reward {
	if s.catalog == nil {
		return nil
	}

	rewards, err := s.catalog.ByCategory(category)
	if err != nil {
		log.Printf("rewards: category query failed for %q: %v", category, err)
		rewards = nil
	}
	if len(rewards) >= rewardCount {
		return rewards
	}

	all, err := s.catalog.All()
	if err != nil {
		log.Printf("rewards: catalog unavailable: %v", err)
		return rewards
	}
	seen := make(map[uint]bool, len(rewards))
	for _, r := range rewards {
		seen[r.ID] = true
	}
	for _, r := range all {
		if !seen[r.ID] {
			rewards = append(rewards, r)
		}
	}
	return rewards
}

func normalizeReward(r models.Reward) game.Reward {
	out := game.Reward{
		ID:          r.ID,
		Kind:        r.Kind,
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Tier:        r.Tier,
	}
	switch out.Kind {
	case models.RewardKindPlaylist, models.RewardKindFilter, models.RewardKindDocument, models.RewardKindOther:
	default:
		out.Kind = models.RewardKindPlaylist
	}
	if out.Name == "" {
		out.Name = genericName(out.Kind)
	}
	if out.Description == "" {
		out.Description = genericDescription(out.Kind)
	}
	if out.Tier < 1 || out.Tier > 4 {
		out.Tier = 1
	}
	return out
}

// genericRewards is the terminal fallback: one reward per kind, each drawn
// from its built-in pool.
func genericRewards() []game.Reward {
	return []game.Reward{
		{Kind: models.RewardKindPlaylist, Name: "Playlist Spotify", Description: genericPlaylists[rand.Intn(len(genericPlaylists))], Tier: 1},
		{Kind: models.RewardKindFilter, Name: "Filtro Instagram", Description: genericFilters[rand.Intn(len(genericFilters))], Tier: 1},
		{Kind: models.RewardKindDocument, Name: "PDF Exclusivo", Description: genericDocuments[rand.Intn(len(genericDocuments))], Tier: 1},
	}
}

func genericName(kind string) string {
	switch kind {
	case models.RewardKindFilter:
		return "Filtro Instagram"
	case models.RewardKindDocument:
		return "PDF Exclusivo"
	default:
		return "Playlist Spotify"
	}
}

func genericDescription(kind string) string {
	switch kind {
	case models.RewardKindFilter:
		return genericFilters[rand.Intn(len(genericFilters))]
	case models.RewardKindDocument:
		return genericDocuments[rand.Intn(len(genericDocuments))]
	default:
		return genericPlaylists[rand.Intn(len(genericPlaylists))]
	}
}

// Grant records delivered rewards; failures are logged, never returned.
func (s *RewardService) Grant(mesaID, memberID uint, rewards []game.Reward, feedback string) {
	if s.db == nil {
		return
	}
	for _, r := range rewards {
		grant := models.RewardGrant{
			MesaID:    mesaID,
			MemberID:  memberID,
			RewardID:  r.ID,
			Kind:      r.Kind,
			Name:      r.Name,
			Feedback:  feedback,
			CreatedAt: time.Now(),
		}
		if err := s.db.Create(&grant).Error; err != nil {
			log.Printf("rewards: failed to record grant for member %d: %v", memberID, err)
		}
	}
}

// ListGrants returns a member's delivered rewards, newest first.
func (s *RewardService) ListGrants(mesaID, memberID uint) ([]models.RewardGrant, error) {
	var grants []models.RewardGrant
	if err := s.db.Where("mesa_id = ? AND member_id = ?", mesaID, memberID).
		Order("created_at DESC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

// Catalog management for hosts.

func (s *RewardService) ListCatalog() ([]models.Reward, error) {
	var rewards []models.Reward
	if err := s.db.Order("created_at DESC").Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (s *RewardService) CreateCatalogEntry(categoryName, kind, name, description, url string, tier int) (*models.Reward, error) {
	var category models.RewardCategory
	if err := s.db.Where("name = ?", categoryName).First(&category).Error; err != nil {
		category = models.RewardCategory{Name: categoryName}
		if err := s.db.Create(&category).Error; err != nil {
			return nil, err
		}
	}

	reward := models.Reward{
		CategoryID:  category.ID,
		Kind:        kind,
		Name:        name,
		Description: description,
		URL:         url,
		Tier:        tier,
	}
	normalized := normalizeReward(reward)
	reward.Kind, reward.Name, reward.Description, reward.Tier = normalized.Kind, normalized.Name, normalized.Description, normalized.Tier

	if err := s.db.Create(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (s *RewardService) DeleteCatalogEntry(rewardID uint) error {
	return s.db.Delete(&models.Reward{}, rewardID).Error
}

// SeedCategories makes sure the known reward categories exist.
func (s *RewardService) SeedCategories() {
	for _, name := range rewardCategories {
		var existing models.RewardCategory
		if err := s.db.Where("name = ?", name).First(&existing).Error; err != nil {
			s.db.Create(&models.RewardCategory{Name: name})
		}
	}
}
