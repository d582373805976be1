package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
)

// Validator combines struct-tag validation with exercise content validation.
type Validator struct {
	structValidator  *validator.Validate
	contentValidator *ContentValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:  structValidator,
		contentValidator: NewContentValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate performs struct-tag validation and returns field-level errors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Content returns the exercise content validator
func (v *Validator) Content() *ContentValidator {
	return v.contentValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("exercise_type", validateExerciseType)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions
func validateExerciseType(fl validator.FieldLevel) bool {
	return exercises.IsValid(exercises.ExerciseType(fl.Field().String()))
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	validLevels := []models.DifficultyLevel{
		models.DifficultyA1,
		models.DifficultyA2,
		models.DifficultyB1,
		models.DifficultyB2,
		models.DifficultyC1,
		models.DifficultyC2,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}
