package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dailydost/dailydost/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("habit_category", validateHabitCategory); err != nil {
		panic(fmt.Sprintf("failed to register habit_category validator: %v", err))
	}
	if err := Validate.RegisterValidation("note_category", validateNoteCategory); err != nil {
		panic(fmt.Sprintf("failed to register note_category validator: %v", err))
	}
}

func validateHabitCategory(fl validator.FieldLevel) bool {
	switch models.Category(fl.Field().String()) {
	case models.CategoryAcademic, models.CategoryHealth, models.CategoryPersonal:
		return true
	default:
		return false
	}
}

func validateNoteCategory(fl validator.FieldLevel) bool {
	switch models.NoteCategory(fl.Field().String()) {
	case models.NoteChallenge, models.NoteMistake, models.NoteReflection:
		return true
	default:
		return false
	}
}

// ValidateCategory validates a habit category string value
func ValidateCategory(value string) error {
	switch models.Category(value) {
	case models.CategoryAcademic, models.CategoryHealth, models.CategoryPersonal:
		return nil
	default:
		return fmt.Errorf("invalid category: %s (must be 'Academic', 'Health', or 'Personal')", value)
	}
}

// ValidateEntryStatus validates a history entry status string value
func ValidateEntryStatus(value string) error {
	switch models.EntryStatus(value) {
	case models.StatusCompleted, models.StatusFailed, models.StatusSkipped:
		return nil
	default:
		return fmt.Errorf("invalid status: %s (must be 'completed', 'failed', or 'skipped')", value)
	}
}

// SanitizeText trims whitespace and removes control characters except newline and tab
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}
