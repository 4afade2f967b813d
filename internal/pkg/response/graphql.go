package response

import (
	"errors"
	"time"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/service"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"

	// TimestampLayout is ISO 8601 in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// CodeOf maps an operation error to its envelope code.
func CodeOf(err error) string {
	switch service.StatusOf(err) {
	case service.BadRequest:
		return CodeValidation
	case service.NotFound:
		return CodeNotFound
	default:
		return CodeInternal
	}
}

// ResolverError carries envelope extensions through the GraphQL engine.
type ResolverError struct {
	Err  error
	Code string
	At   time.Time
}

// WrapResolverError attaches a code and timestamp to err. nil stays nil.
func WrapResolverError(err error) error {
	if err == nil {
		return nil
	}
	var re *ResolverError
	if errors.As(err, &re) {
		return err
	}
	return &ResolverError{Err: err, Code: CodeOf(err), At: time.Now()}
}

func (e *ResolverError) Error() string { return e.Err.Error() }

func (e *ResolverError) Unwrap() error { return e.Err }

// Extensions implements the engine's extensions hook.
func (e *ResolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":      e.Code,
		"timestamp": e.At.UTC().Format(TimestampLayout),
	}
	var ve *service.ValidationError
	if errors.As(e.Err, &ve) {
		ext["field"] = ve.Field
	}
	return ext
}

// GraphQLErrors renders engine errors into the envelope. Errors that carry no
// code, such as syntax errors, are reported as INTERNAL_ERROR.
func GraphQLErrors(errs []*gqlerrors.QueryError, now time.Time) []*dto.GraphQLError {
	if len(errs) == 0 {
		return nil
	}
	res := make([]*dto.GraphQLError, 0, len(errs))
	for _, qe := range errs {
		if qe == nil {
			continue
		}
		ext := make(map[string]interface{}, len(qe.Extensions)+2)
		for k, v := range qe.Extensions {
			ext[k] = v
		}
		if _, ok := ext["code"]; !ok {
			ext["code"] = CodeInternal
		}
		if _, ok := ext["timestamp"]; !ok {
			ext["timestamp"] = now.UTC().Format(TimestampLayout)
		}

		ge := &dto.GraphQLError{
			Message:    qe.Message,
			Path:       qe.Path,
			Extensions: ext,
		}
		for _, loc := range qe.Locations {
			ge.Locations = append(ge.Locations, dto.GraphQLErrorLocation{Line: loc.Line, Column: loc.Column})
		}
		res = append(res, ge)
	}
	return res
}

// NewGraphQLError builds a single envelope error outside the engine, e.g. for a bad request body.
func NewGraphQLError(message string, code string, now time.Time) *dto.GraphQLError {
	return &dto.GraphQLError{
		Message: message,
		Extensions: map[string]interface{}{
			"code":      code,
			"timestamp": now.UTC().Format(TimestampLayout),
		},
	}
}
