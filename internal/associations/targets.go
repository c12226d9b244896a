package associations

// LikeTargetSet is the 4-way closed set of content a like can attach to.
// Exactly one field must be populated.
type LikeTargetSet struct {
	MessageID         *uint `json:"message_id,omitempty"`
	BookInteractionID *uint `json:"book_interaction_id,omitempty"`
	ReviewID          *uint `json:"review_id,omitempty"`
	QuoteID           *uint `json:"quote_id,omitempty"`
}

func (s LikeTargetSet) slots() []Slot {
	return []Slot{
		{Name: SlotMessage, ID: s.MessageID},
		{Name: SlotBookInteraction, ID: s.BookInteractionID},
		{Name: SlotReview, ID: s.ReviewID},
		{Name: SlotQuote, ID: s.QuoteID},
	}
}

// ContentTargetSet is the 3-way set for reposts and saves. Messages are not
// repostable, so the slot set excludes them.
type ContentTargetSet struct {
	BookInteractionID *uint `json:"book_interaction_id,omitempty"`
	ReviewID          *uint `json:"review_id,omitempty"`
	QuoteID           *uint `json:"quote_id,omitempty"`
}

func (s ContentTargetSet) slots() []Slot {
	return []Slot{
		{Name: SlotBookInteraction, ID: s.BookInteractionID},
		{Name: SlotReview, ID: s.ReviewID},
		{Name: SlotQuote, ID: s.QuoteID},
	}
}
