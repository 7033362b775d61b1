// Package entity contains the core business objects of the project.
package entity

// MealSlot identifies one of the three daily meal services. The value is
// the meal-type name the school-meals API reports for the slot.
type MealSlot string

const (
	// MealSlotMorning is the breakfast service.
	MealSlotMorning MealSlot = "조식"
	// MealSlotLunch is the lunch service.
	MealSlotLunch MealSlot = "중식"
	// MealSlotDinner is the dinner service.
	MealSlotDinner MealSlot = "석식"
)

// String returns the string representation of the MealSlot.
func (m MealSlot) String() string {
	return string(m)
}

// IsValid checks if the MealSlot is a valid value.
func (m MealSlot) IsValid() bool {
	switch m {
	case MealSlotMorning, MealSlotLunch, MealSlotDinner:
		return true
	default:
		return false
	}
}

// PushTitle is the campaign title used for this slot's automatic push.
func (m MealSlot) PushTitle() string {
	return "🍱 " + string(m) + " 급식 체크"
}
