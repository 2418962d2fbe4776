package delivery

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	cardNumberRx = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRx = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCvcRx    = regexp.MustCompile(`^\d{3,4}$`)
)

// RegisterCheckoutValidators installs the card-field validators used by the
// checkout request binding on gin's validator engine. Safe to call more than
// once.
func RegisterCheckoutValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return cardNumberRx.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		return cardExpiryRx.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cardcvc", func(fl validator.FieldLevel) bool {
		return cardCvcRx.MatchString(fl.Field().String())
	})
}
