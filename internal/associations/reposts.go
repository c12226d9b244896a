package associations

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// RepostStore defines the persistence operations the repost/save service needs.
type RepostStore interface {
	CreateRepostSave(rs *entities.RepostSave) error
	GetRepostSaveByID(id uint) (*entities.RepostSave, error)
	SaveRepostSave(rs *entities.RepostSave) error
}

var ErrInvalidRepostKind = errors.New("repost kind must be 'repost' or 'save'")

// RepostService creates and retargets reposts and saves. Same composition as
// LikeService, over the narrower 3-way slot set.
type RepostService struct {
	resolver *Resolver
	reposts  RepostStore
}

func NewRepostService(resolver *Resolver, reposts RepostStore) *RepostService {
	return &RepostService{resolver: resolver, reposts: reposts}
}

// CreateRepostSave attaches a new repost or save by userID to the single
// target named in targets.
func (s *RepostService) CreateRepostSave(userID uint, kind entities.RepostKind, targets ContentTargetSet) (*entities.RepostSave, error) {
	if kind != entities.RepostKindRepost && kind != entities.RepostKindSave {
		return nil, ErrInvalidRepostKind
	}

	resolved, err := s.resolveTarget(targets)
	if err != nil {
		return nil, err
	}

	rs := &entities.RepostSave{UserID: userID, Kind: kind}
	resolved.ApplyToRepostSave(rs)

	if err := s.reposts.CreateRepostSave(rs); err != nil {
		return nil, translateWriteError(err)
	}
	return rs, nil
}

// ModifyRepostSave replaces the single reference of an existing repost/save.
// A row previously targeting a review and retargeted to a quote ends up with
// the quote column set and both other columns NULL.
func (s *RepostService) ModifyRepostSave(id uint, targets ContentTargetSet) (*entities.RepostSave, error) {
	resolved, err := s.resolveTarget(targets)
	if err != nil {
		return nil, err
	}

	rs, err := s.reposts.GetRepostSaveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssociationNotFound
		}
		return nil, fmt.Errorf("%w: load repost_save %d: %v", ErrPersistenceUnavailable, id, err)
	}

	resolved.ApplyToRepostSave(rs)

	if err := s.reposts.SaveRepostSave(rs); err != nil {
		return nil, translateWriteError(err)
	}
	return rs, nil
}

// Target returns the resolved target of an existing repost/save.
func (s *RepostService) Target(rs *entities.RepostSave) (*ResolvedTarget, error) {
	slot, err := ResolveOne(ContentTargetSet{
		BookInteractionID: rs.BookInteractionID,
		ReviewID:          rs.ReviewID,
		QuoteID:           rs.QuoteID,
	}.slots())
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(slot)
}

func (s *RepostService) resolveTarget(targets ContentTargetSet) (*ResolvedTarget, error) {
	slot, err := ResolveOne(targets.slots())
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(slot)
}
