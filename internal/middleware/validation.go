package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "acctfilter/internal/errors"
)

// Validator checks decoded form structs against their validate tags.
// Field names in errors come from the form tag so clients see the names
// they submitted.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a validator with the screening-specific rules
// registered: monthlist, column and reportformat.
func NewValidator(logger *slog.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("monthlist", isMonthList)
	v.RegisterValidation("column", isColumnLabel)
	v.RegisterValidation("reportformat", isReportFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
		logger:   logger.With(slog.String("component", "validator")),
	}
}

// ValidateStruct validates v and returns an *apierrors.APIError listing
// every failing field, or nil.
func (m *Validator) ValidateStruct(v interface{}) error {
	err := m.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apierrors.InvalidRequestWithError(err)
	}

	out := make([]apierrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}
	m.logger.Debug("form rejected", slog.Int("invalid_fields", len(out)))
	return apierrors.NewValidationErrors(out)
}

// ContentTypeValidator rejects bodies whose Content-Type is not one of the
// given prefixes. GET, HEAD and OPTIONS pass through.
func ContentTypeValidator(handler *apierrors.ErrorHandler, contentTypes ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			contentType := r.Header.Get("Content-Type")
			if contentType == "" {
				handler.HandleError(w, r, apierrors.New(
					http.StatusBadRequest,
					"MISSING_CONTENT_TYPE",
					"Content-Type header is required",
				))
				return
			}
			for _, allowed := range contentTypes {
				if strings.HasPrefix(contentType, allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}
			handler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusUnsupportedMediaType,
				"UNSUPPORTED_MEDIA_TYPE",
				"Unsupported content type",
				map[string]interface{}{
					"content_type": contentType,
					"allowed":      contentTypes,
				},
			))
		})
	}
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "monthlist":
		return fmt.Sprintf("%s must be comma separated month numbers between 1 and 12", field)
	case "column":
		return fmt.Sprintf("%s must name a column", field)
	case "reportformat":
		return fmt.Sprintf("%s must be xlsx, csv or parquet", field)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, err.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}

// ParseMonthList reads a comma separated list of month numbers such as
// "1, 2,3". Every entry must be an integer between 1 and 12.
func ParseMonthList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty month list")
	}
	parts := strings.Split(s, ",")
	months := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("month %q is not an integer", strings.TrimSpace(p))
		}
		if n < 1 || n > 12 {
			return nil, fmt.Errorf("month %d is outside 1-12", n)
		}
		months = append(months, n)
	}
	return months, nil
}

func isMonthList(fl validator.FieldLevel) bool {
	_, err := ParseMonthList(fl.Field().String())
	return err == nil
}

func isColumnLabel(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isReportFormat(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "xlsx", "csv", "parquet":
		return true
	}
	return false
}
