package associations

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bookwormapp/bookworm/internal/entities"
)

// Per-slot store interfaces, defined here where they are consumed. The
// repositories under internal/database satisfy them.
type (
	MessageGetter interface {
		GetMessageByID(id uint) (*entities.Message, error)
	}
	InteractionGetter interface {
		GetInteractionByID(id uint) (*entities.BookInteraction, error)
	}
	ReviewGetter interface {
		GetReviewByID(id uint) (*entities.Review, error)
	}
	QuoteGetter interface {
		GetQuoteByID(id uint) (*entities.Quote, error)
	}
)

// Resolver loads the entity behind a validated (slot, id) pair from the
// store owning that slot's type.
type Resolver struct {
	messages     MessageGetter
	interactions InteractionGetter
	reviews      ReviewGetter
	quotes       QuoteGetter
}

func NewResolver(messages MessageGetter, interactions InteractionGetter, reviews ReviewGetter, quotes QuoteGetter) *Resolver {
	return &Resolver{
		messages:     messages,
		interactions: interactions,
		reviews:      reviews,
		quotes:       quotes,
	}
}

// ResolvedTarget is the typed result of a successful lookup. Exactly one of
// the entity fields is set, matching Slot.
type ResolvedTarget struct {
	Slot string
	ID   uint

	Message     *entities.Message
	Interaction *entities.BookInteraction
	Review      *entities.Review
	Quote       *entities.Quote
}

// Resolve looks the target up in its owning store. A miss is a client-input
// error (TargetNotFoundError), never retried; any other store failure is
// wrapped as ErrPersistenceUnavailable.
func (r *Resolver) Resolve(slot Slot) (*ResolvedTarget, error) {
	if slot.ID == nil {
		return nil, ErrNoTargetSpecified
	}
	id := *slot.ID
	resolved := &ResolvedTarget{Slot: slot.Name, ID: id}

	var err error
	switch slot.Name {
	case SlotMessage:
		resolved.Message, err = r.messages.GetMessageByID(id)
	case SlotBookInteraction:
		resolved.Interaction, err = r.interactions.GetInteractionByID(id)
	case SlotReview:
		resolved.Review, err = r.reviews.GetReviewByID(id)
	case SlotQuote:
		resolved.Quote, err = r.quotes.GetQuoteByID(id)
	default:
		return nil, fmt.Errorf("unknown association slot %q", slot.Name)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &TargetNotFoundError{Slot: slot.Name, ID: id}
		}
		return nil, fmt.Errorf("%w: resolve %s %d: %v", ErrPersistenceUnavailable, slot.Name, id, err)
	}
	return resolved, nil
}

// OwnerID returns the user who owns the resolved content: the author of a
// review or quote, the interacting user of a book interaction, the sender of
// a message.
func (t *ResolvedTarget) OwnerID() uint {
	switch {
	case t.Message != nil:
		return t.Message.SenderID
	case t.Interaction != nil:
		return t.Interaction.UserID
	case t.Review != nil:
		return t.Review.UserID
	case t.Quote != nil:
		return t.Quote.UserID
	}
	return 0
}

// ApplyToLike sets the one matching reference column on the like and
// explicitly clears every other one. The unconditional clearing matters on
// update paths: a prior state may have referenced a different slot, and a
// stale reference must not survive a target change.
func (t *ResolvedTarget) ApplyToLike(like *entities.Like) {
	like.MessageID = nil
	like.BookInteractionID = nil
	like.ReviewID = nil
	like.QuoteID = nil

	id := t.ID
	switch t.Slot {
	case SlotMessage:
		like.MessageID = &id
	case SlotBookInteraction:
		like.BookInteractionID = &id
	case SlotReview:
		like.ReviewID = &id
	case SlotQuote:
		like.QuoteID = &id
	}
}

// ApplyToRepostSave mirrors ApplyToLike for the 3-way repost/save slot set.
func (t *ResolvedTarget) ApplyToRepostSave(rs *entities.RepostSave) {
	rs.BookInteractionID = nil
	rs.ReviewID = nil
	rs.QuoteID = nil

	id := t.ID
	switch t.Slot {
	case SlotBookInteraction:
		rs.BookInteractionID = &id
	case SlotReview:
		rs.ReviewID = &id
	case SlotQuote:
		rs.QuoteID = &id
	}
}
