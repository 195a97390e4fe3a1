package uszipcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// paramValidate checks the field level rules of QueryParams and Config.
// Rules spanning several fields live in validateParams.
var paramValidate *validator.Validate

func init() {
	paramValidate = validator.New()
	if err := paramValidate.RegisterValidation("zipcode_type", validateZipcodeType); err != nil {
		panic(err)
	}
}

func validateZipcodeType(fl validator.FieldLevel) bool {
	switch ZipcodeType(fl.Field().String()) {
	case AnyZipcodeType, Standard, POBox, Unique, Military:
		return true
	}
	return false
}

// validateStruct runs the tag rules of v and reports violations as
// ErrInvalidParam, naming every offending field.
func validateStruct(v any) error {
	err := paramValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidParam, strings.Join(msgs, "; "))
}
