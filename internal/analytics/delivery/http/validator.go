package http

import (
	"reflect"
	"strings"

	"social-analytics-srv/pkg/util"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const tagISODate = "isodate"

// RegisterValidators installs the query validators used by this package on gin's
// default binding engine. Field errors report the query parameter name.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v.RegisterValidation(tagISODate, func(fl validator.FieldLevel) bool {
		_, err := util.ParseISODate(fl.Field().String())
		return err == nil
	})
}
