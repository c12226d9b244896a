package associations

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// LikeStore defines the persistence operations the like service needs.
type LikeStore interface {
	CreateLike(like *entities.Like) error
	GetLikeByID(id uint) (*entities.Like, error)
	SaveLike(like *entities.Like) error
}

// LikeService creates and retargets likes. It composes the cardinality check
// with target resolution: all validation failures are computed before any
// write is attempted.
type LikeService struct {
	resolver *Resolver
	likes    LikeStore
}

func NewLikeService(resolver *Resolver, likes LikeStore) *LikeService {
	return &LikeService{resolver: resolver, likes: likes}
}

// CreateLike attaches a new like by userID to the single target named in
// targets. Duplicate likes by the same user on the same target are allowed;
// there is no uniqueness check on (user, target).
func (s *LikeService) CreateLike(userID uint, targets LikeTargetSet) (*entities.Like, error) {
	resolved, err := s.resolveTarget(targets)
	if err != nil {
		return nil, err
	}

	like := &entities.Like{UserID: userID}
	resolved.ApplyToLike(like)

	if err := s.likes.CreateLike(like); err != nil {
		return nil, translateWriteError(err)
	}
	return like, nil
}

// ModifyLike re-runs validation and resolution against an existing like and
// replaces its single reference. The previous reference is cleared even when
// the new target lives in a different slot.
func (s *LikeService) ModifyLike(id uint, targets LikeTargetSet) (*entities.Like, error) {
	resolved, err := s.resolveTarget(targets)
	if err != nil {
		return nil, err
	}

	like, err := s.likes.GetLikeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssociationNotFound
		}
		return nil, fmt.Errorf("%w: load like %d: %v", ErrPersistenceUnavailable, id, err)
	}

	resolved.ApplyToLike(like)

	if err := s.likes.SaveLike(like); err != nil {
		return nil, translateWriteError(err)
	}
	return like, nil
}

// Target returns the resolved target of an existing like, or nil when the
// referenced content has since been deleted.
func (s *LikeService) Target(like *entities.Like) (*ResolvedTarget, error) {
	slot, err := ResolveOne(LikeTargetSet{
		MessageID:         like.MessageID,
		BookInteractionID: like.BookInteractionID,
		ReviewID:          like.ReviewID,
		QuoteID:           like.QuoteID,
	}.slots())
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(slot)
}

func (s *LikeService) resolveTarget(targets LikeTargetSet) (*ResolvedTarget, error) {
	slot, err := ResolveOne(targets.slots())
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(slot)
}

// translateWriteError maps storage-surfaced failures into the association
// error taxonomy so callers cannot tell "caught in validation" from "caught
// by the database". Unique-constraint violations become
// ErrDuplicateAssociation; everything else is a retry-eligible transport
// failure.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateAssociation
	}
	return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
}
