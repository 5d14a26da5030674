package checkout

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"dira-storefront/apperr"
	"dira-storefront/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateForm checks the required fields of form. Address fields are only
// required for home delivery.
func ValidateForm(form models.CheckoutForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = reason(fe)
		names = append(names, fe.Field())
	}
	sort.Strings(names)
	return &apperr.ValidationError{
		Message: "missing or invalid fields: " + strings.Join(names, ", "),
		Fields:  fields,
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return fe.Tag()
}

// normalizeForm trims every text field
func normalizeForm(form models.CheckoutForm) models.CheckoutForm {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Address = strings.TrimSpace(form.Address)
	form.City = strings.TrimSpace(form.City)
	form.Region = strings.TrimSpace(form.Region)
	form.PostalCode = strings.TrimSpace(form.PostalCode)
	form.PaymentMethod = models.PaymentMethod(strings.ToLower(strings.TrimSpace(string(form.PaymentMethod))))
	form.Wallet = models.Wallet(strings.ToLower(strings.TrimSpace(string(form.Wallet))))
	form.DeliveryMethod = models.DeliveryMethod(strings.ToLower(strings.TrimSpace(string(form.DeliveryMethod))))
	return form
}
