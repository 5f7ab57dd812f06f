package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/apierror"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	var (
		valErr  *service.ValidationError
		stErr   *service.StateError
		authErr *service.AuthorizationError
		fundErr *service.InsufficientFundsError
		capErr  *service.CapacityError
	)
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewWithCode(valErr.Code, valErr.Message))
	case errors.As(err, &stErr):
		status := http.StatusConflict
		if esNoEncontrado(stErr.Code) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.NewWithCode(stErr.Code, stErr.Message))
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, apierror.New(authErr.Message))
	case errors.As(err, &fundErr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewWithCode("insufficient-funds", fundErr.Error()))
	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, apierror.NewWithCode("capacity-limit", capErr.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

func esNoEncontrado(code string) bool {
	switch code {
	case "invoice-not-found", "item-not-found", "product-not-found",
		"service-not-found", "closure-not-found":
		return true
	}
	return false
}
