package associations

// Slot names for the closed target sets. The names double as API field
// prefixes and as diagnostics in AmbiguousTargetError / TargetNotFoundError.
const (
	SlotMessage         = "message"
	SlotBookInteraction = "book_interaction"
	SlotReview          = "review"
	SlotQuote           = "quote"
)

// Slot is one named optional reference of an association.
type Slot struct {
	Name string
	ID   *uint
}

// ResolveOne checks that exactly one slot of a fixed, ordered slot set is
// populated and returns it. Zero populated slots yields ErrNoTargetSpecified,
// two or more yields AmbiguousTargetError naming all populated slots.
//
// Pure function: no persistence access, no mutation of its input.
func ResolveOne(slots []Slot) (Slot, error) {
	var populated []Slot
	for _, s := range slots {
		if s.ID != nil {
			populated = append(populated, s)
		}
	}

	switch len(populated) {
	case 0:
		return Slot{}, ErrNoTargetSpecified
	case 1:
		return populated[0], nil
	default:
		names := make([]string, len(populated))
		for i, s := range populated {
			names[i] = s.Name
		}
		return Slot{}, &AmbiguousTargetError{Slots: names}
	}
}
