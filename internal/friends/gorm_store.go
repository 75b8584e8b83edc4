package friends

import (
	"context"
	"errors"

	"fittrack/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore persists friendship edges in the relational store. Pair
// writes run inside one transaction so the two mirrored rows can never
// diverge on partial failure.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of the given database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListEdges(ctx context.Context, owner string) ([]models.FriendshipEdge, error) {
	var edges []models.FriendshipEdge
	err := s.db.WithContext(ctx).
		Where("owner_email = ?", owner).
		Order("created_at").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (s *GormStore) EdgeByID(ctx context.Context, owner string, id uint) (models.FriendshipEdge, error) {
	var edge models.FriendshipEdge
	err := s.db.WithContext(ctx).
		Where("owner_email = ? AND id = ?", owner, id).
		First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FriendshipEdge{}, ErrNotFound
	}
	return edge, err
}

func (s *GormStore) EdgeBetween(ctx context.Context, owner, friend string) (models.FriendshipEdge, error) {
	var edge models.FriendshipEdge
	err := s.db.WithContext(ctx).
		Where("owner_email = ? AND friend_email = ?", owner, friend).
		First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FriendshipEdge{}, ErrNotFound
	}
	return edge, err
}

func (s *GormStore) CreatePair(ctx context.Context, sender, receiver string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		senderEdge := models.FriendshipEdge{
			OwnerEmail:     sender,
			FriendEmail:    receiver,
			Status:         models.StatusPending,
			InitiatorEmail: sender,
		}
		if err := tx.Create(&senderEdge).Error; err != nil {
			return err
		}

		receiverEdge := models.FriendshipEdge{
			OwnerEmail:     receiver,
			FriendEmail:    sender,
			Status:         models.StatusPending,
			InitiatorEmail: sender,
		}
		return tx.Create(&receiverEdge).Error
	})
}

func (s *GormStore) SetPairStatus(ctx context.Context, owner, friend string, status models.FriendshipStatus) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FriendshipEdge{}).
			Where("owner_email = ? AND friend_email = ?", owner, friend).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		// The mirror may be missing after out-of-band deletes; that is
		// tolerated, not repaired.
		return tx.Model(&models.FriendshipEdge{}).
			Where("owner_email = ? AND friend_email = ?", friend, owner).
			Update("status", status).Error
	})
}

func (s *GormStore) DeletePair(ctx context.Context, a, b string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("owner_email = ? AND friend_email = ?", a, b).
			Delete(&models.FriendshipEdge{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("owner_email = ? AND friend_email = ?", b, a).
			Delete(&models.FriendshipEdge{}).Error
	})
}
