package validation

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	// Data echoes the rejected input so the caller can correct and resubmit.
	Data any `json:"data,omitempty"`
}

// capitalizedPattern is the letter rule shared by category and status:
// an uppercase letter followed by letters and spaces only.
var capitalizedPattern = regexp.MustCompile(`^[A-Z][a-zA-Z ]*$`)

// RegisterValidators installs the custom validators on gin's binding engine.
// Call once at startup and once per test router.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("capitalized", capitalized)
	}
}

func capitalized(fl validator.FieldLevel) bool {
	return capitalizedPattern.MatchString(fl.Field().String())
}

// BindAndValidateJSON binds the request body into dst. On failure it writes
// the error response, echoing dst for field-level validation errors, and
// reports false.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			resp := FormatValidationErrors(verrs)
			resp.Data = dst
			c.AbortWithStatusJSON(http.StatusBadRequest, resp)
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid request body",
			Errors: []FieldError{
				{
					Field:   "",
					Rule:    "syntax",
					Message: err.Error(),
				},
			},
		})
		return false
	}

	return true
}

func FormatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Message: "validation failed",
		Errors:  fields,
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "capitalized":
		return field + " must start with an uppercase letter and contain letters and spaces only"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
