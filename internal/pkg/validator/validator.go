package validator

import validatorlib "github.com/go-playground/validator/v10"

var validate = validatorlib.New()

// Validate runs struct-tag validation and returns field->tag failures,
// or nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fails := make(map[string]string)
	for _, fe := range err.(validatorlib.ValidationErrors) {
		fails[fe.Field()] = fe.Tag()
	}
	return fails
}
