package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with struct-level validation
// registered for CreateOrderRequest.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// report errors under json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(createOrderStructValidation, CreateOrderRequest{})

	return v
}

// createOrderStructValidation verifies the declared total_amount equals
// the sum of quantity * price_at_time over the items, compared in whole
// cents to avoid float rounding issues. The check runs only when the
// per-field rules already hold, so nil pointers mean a required error
// was reported elsewhere.
func createOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)
	if req.OrderData.TotalAmount == nil {
		return
	}

	var sumCents int64
	for _, it := range req.OrderItems {
		if it.PriceAtTime == nil {
			return
		}
		sumCents += int64(it.Quantity) * int64(math.Round(*it.PriceAtTime*100))
	}

	totalCents := int64(math.Round(*req.OrderData.TotalAmount * 100))
	if sumCents != totalCents {
		sl.ReportError(req.OrderData.TotalAmount, "total_amount", "TotalAmount", "total_match_items",
			fmt.Sprintf("items sum %d != total %d cents", sumCents, totalCents))
	}
}

// Message renders a validation failure as a client-facing description.
func Message(err error) string {
	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing %s", fe.Field())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must not be empty", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "total_match_items":
		return "total_amount does not match order items"
	}
	return fmt.Sprintf("invalid %s", fe.Field())
}
