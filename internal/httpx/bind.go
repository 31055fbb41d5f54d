package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate is safe for concurrent use and
// caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = errors.New("httpx: invalid request body")

// Decode reads the request body into dst and validates it against its
// `validate` struct tags. Returns ErrInvalidBody for malformed JSON and
// validator.ValidationErrors for failed constraints.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}

	return validate.Struct(dst)
}

// FieldErrors flattens validator errors into a field → message map for the
// ValidationError response envelope.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
	return fields
}
