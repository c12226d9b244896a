// Package interactions owns the read/liked state of a single (user, book)
// pair. States: Absent -> ReadOnly (read, not liked) -> ReadLiked (read and
// liked). A liked interaction is always a read one, and un-reading a book
// deletes the interaction together with everything it owns rather than
// keeping an "unread" row around.
package interactions

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/associations"
	"github.com/bookwormapp/bookworm/internal/entities"
)

var (
	// ErrLikedWithoutRead is returned when a request marks a book as liked
	// but not read. Enforced symmetrically on create and update.
	ErrLikedWithoutRead = errors.New("a book cannot be liked without being read")

	// ErrInteractionRequiresReading rejects the degenerate create of an
	// interaction that is neither read nor liked: a pure no-op is not worth
	// a row.
	ErrInteractionRequiresReading = errors.New("an interaction requires the book to be read")
)

// Store defines the persistence operations the state machine needs. The
// (user, book) unique index at the storage layer is the backstop against
// concurrent creates that both pass the in-memory existence check.
type Store interface {
	GetInteractionByUserAndBook(userID, bookID uint) (*entities.BookInteraction, error)
	CreateInteraction(interaction *entities.BookInteraction) error
	UpdateInteraction(interaction *entities.BookInteraction) error
	// DeleteInteractionWithOwned removes the interaction row and everything
	// it exclusively owns: comments, likes and repost/saves targeting it.
	DeleteInteractionWithOwned(id uint) error
}

// Service applies the interaction state machine.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

const maxDescriptionLength = 2000

// normalize validates the read/liked pair and trims the free-text
// description before any write. Pure function over the entity, invoked
// explicitly by the service rather than hidden behind persistence hooks, so
// the invariant is testable without a database.
func normalize(interaction *entities.BookInteraction) error {
	if interaction.Liked && !interaction.Read {
		return ErrLikedWithoutRead
	}
	interaction.Description = strings.TrimSpace(interaction.Description)
	if len(interaction.Description) > maxDescriptionLength {
		interaction.Description = interaction.Description[:maxDescriptionLength]
	}
	return nil
}

// Upsert applies the requested (read, liked, description) state to the
// (user, book) pair:
//
//   - no row yet, read=true: a row is created
//   - no row yet, read=false: rejected (liked decides which error)
//   - existing row, read=true: updated in place; unliking without unreading
//     is permitted
//   - existing row, read=false, liked=false: the row and everything it owns
//     is deleted; nil is returned for the interaction
//   - read=false, liked=true: rejected on both paths
//
// All validation happens before any write. A nil interaction with a nil
// error means the effect was a deletion.
func (s *Service) Upsert(userID, bookID uint, read, liked bool, description string) (*entities.BookInteraction, error) {
	candidate := &entities.BookInteraction{
		UserID:      userID,
		BookID:      bookID,
		Read:        read,
		Liked:       liked,
		Description: description,
	}
	if err := normalize(candidate); err != nil {
		return nil, err
	}

	existing, err := s.store.GetInteractionByUserAndBook(userID, bookID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: load interaction for user %d book %d: %v",
			associations.ErrPersistenceUnavailable, userID, bookID, err)
	}

	if existing == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		if !read {
			return nil, ErrInteractionRequiresReading
		}
		if err := s.store.CreateInteraction(candidate); err != nil {
			return nil, translateWriteError(err)
		}
		return candidate, nil
	}

	if !read {
		// Un-reading ends the interaction's lifecycle, whatever else the
		// request supplied.
		if err := s.store.DeleteInteractionWithOwned(existing.ID); err != nil {
			return nil, translateWriteError(err)
		}
		return nil, nil
	}

	existing.Read = read
	existing.Liked = liked
	existing.Description = candidate.Description
	if err := s.store.UpdateInteraction(existing); err != nil {
		return nil, translateWriteError(err)
	}
	return existing, nil
}

// Get returns the interaction for a (user, book) pair, or nil when absent.
func (s *Service) Get(userID, bookID uint) (*entities.BookInteraction, error) {
	interaction, err := s.store.GetInteractionByUserAndBook(userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: load interaction for user %d book %d: %v",
			associations.ErrPersistenceUnavailable, userID, bookID, err)
	}
	return interaction, nil
}

// translateWriteError folds storage failures into the shared association
// taxonomy: the backstop unique index on (user, book) surfaces as
// ErrDuplicateAssociation, anything else as a retry-eligible transport error.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return associations.ErrDuplicateAssociation
	}
	return fmt.Errorf("%w: %v", associations.ErrPersistenceUnavailable, err)
}
