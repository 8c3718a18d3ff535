package utils

import (
	"errors"
	"fmt"
	"sync"

	"libraryhub/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain tags ("visibility", "role", "contenttype") to gin's validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			GetLogger().Sugar().Fatal("utils.RegisterValidators: gin validator engine is not go-playground/validator")
			return
		}
		must(v.RegisterValidation("visibility", func(fl validator.FieldLevel) bool {
			return models.Visibility(fl.Field().String()).IsValid()
		}))
		must(v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).IsValid()
		}))
		must(v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
			return models.ContentType(fl.Field().String()).IsValid()
		}))
	})
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("failed to register validator: %v", err))
	}
}

// BindingMessage turns a binding error into a caller-safe message.
func BindingMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		fe := vErrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "visibility":
			return fmt.Sprintf("%s must be one of PUBLIC, MEMBERS, HIDDEN", fe.Field())
		case "role":
			return fmt.Sprintf("%s must be one of ADMIN, LIBRARIAN, MEMBER, GUEST", fe.Field())
		case "contenttype":
			return fmt.Sprintf("%s must be one of ebook, gallery, document", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min", "max":
			return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
	}
	return "Invalid request body"
}
