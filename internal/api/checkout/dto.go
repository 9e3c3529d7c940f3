package checkoutapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type checkoutForm struct {
	FirstName        string `form:"first_name" binding:"required,max=100"`
	LastName         string `form:"last_name" binding:"required,max=100"`
	Title            string `form:"title" binding:"required,max=100"`
	Email            string `form:"email" binding:"required,email"`
	SubscriptionType string `form:"subscription_type" binding:"required"`
	Amount           string `form:"amount" binding:"required"`
}

// struct field -> form field, so validation errors point at what the client
// actually sent.
var formFieldNames = map[string]string{
	"FirstName":        "first_name",
	"LastName":         "last_name",
	"Title":            "title",
	"Email":            "email",
	"SubscriptionType": "subscription_type",
	"Amount":           "amount",
}

func bindingErrors(err error) map[string]string {
	errs := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["non_field"] = "Invalid form data."
		return errs
	}

	for _, fe := range verrs {
		name := formFieldNames[fe.StructField()]
		if name == "" {
			name = strings.ToLower(fe.StructField())
		}
		switch fe.Tag() {
		case "required":
			errs[name] = "This field is required."
		case "email":
			errs[name] = "Enter a valid email address."
		case "max":
			errs[name] = "Ensure this value has at most " + fe.Param() + " characters."
		default:
			errs[name] = "Enter a valid value."
		}
	}
	return errs
}
