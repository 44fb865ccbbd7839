package services

import (
	"fmt"
	"net/url"

	"linkup_client/errors"
	"linkup_client/global"

	"github.com/go-playground/validator/v10"
)

// List defaults applied before a request leaves the device
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize fills the list defaults so equivalent queries are identical
func Normalize(page int, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return page, limit
}

// pageQuery encodes normalized pagination parameters
func pageQuery(page int, limit int) url.Values {
	page, limit = Normalize(page, limit)
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))
	return params
}

// validateSchema rejects a request body before it leaves the device
func validateSchema(v interface{}) error {
	err := global.Validator.Struct(v)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return errors.Validation(0, []errors.FieldError{{
			Field:   verrs[0].StructField(),
			Message: verrs[0].Tag(),
		}})
	}
	return errors.Validation(0, nil)
}
