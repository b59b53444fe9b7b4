package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"AB+": {}, "AB-": {},
	"O+": {}, "O-": {},
}

// Register installs the custom binding validators on gin's validator
// engine. Call once at startup before serving requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bloodtype", validBloodType)
}

func validBloodType(fl validator.FieldLevel) bool {
	_, ok := bloodTypes[fl.Field().String()]
	return ok
}
