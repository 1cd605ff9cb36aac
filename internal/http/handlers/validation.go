package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var unitCodePattern = regexp.MustCompile(`^[A-Za-z]{1,8}$`)

// RegisterValidators adds the custom binding rules used by the request
// structs below. Call once before the router starts serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("unitcode", func(fl validator.FieldLevel) bool {
			return unitCodePattern.MatchString(fl.Field().String())
		})
	}
}
