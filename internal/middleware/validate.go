package middleware

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"

	"github.com/wellnest/backend/api/transport"
	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/internal/validation"
)

// RequestSchemas declares the shape a route expects for each request segment.
// Nil segments are not inspected.
type RequestSchemas struct {
	Params validation.Schema
	Query  validation.Schema
	Body   validation.Schema
}

// ValidateRequest rejects malformed requests before the handler runs,
// producing the standard validation body with the offending segment and field.
// Segments are checked in params, query, body order.
func ValidateRequest(schemas RequestSchemas) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if schemas.Params != nil {
				if !checkSegment(ctx, "params", schemas.Params, paramsMap(ctx, schemas.Params)) {
					return
				}
			}
			if schemas.Query != nil {
				if !checkSegment(ctx, "query", schemas.Query, queryMap(ctx, schemas.Query)) {
					return
				}
			}
			if schemas.Body != nil {
				var body map[string]any
				if err := json.Unmarshal(ctx.PostBody(), &body); err != nil {
					respondJSON(ctx, fasthttp.StatusBadRequest,
						transport.NewValidationResponse("body", nil, "invalid JSON payload"))
					return
				}
				if !checkSegment(ctx, "body", schemas.Body, body) {
					return
				}
			}
			next(ctx)
		}
	}
}

func checkSegment(ctx *fasthttp.RequestCtx, source string, schema validation.Schema, input map[string]any) bool {
	err := schema.Validate(input)
	if err == nil {
		return true
	}

	var keys []string
	var dErr *domain.Error
	if errors.As(err, &dErr) && dErr.Field != "" {
		keys = []string{dErr.Field}
	}
	respondJSON(ctx, fasthttp.StatusBadRequest,
		transport.NewValidationResponse(source, keys, err.Error()))
	return false
}

// paramsMap collects path parameters named by the schema. Absent values stay
// absent so Required rules can report them.
func paramsMap(ctx *fasthttp.RequestCtx, schema validation.Schema) map[string]any {
	input := make(map[string]any, len(schema))
	for _, rule := range schema {
		if value, ok := ctx.UserValue(rule.Field).(string); ok {
			input[rule.Field] = value
		}
	}
	return input
}

func queryMap(ctx *fasthttp.RequestCtx, schema validation.Schema) map[string]any {
	input := make(map[string]any, len(schema))
	for _, rule := range schema {
		if ctx.QueryArgs().Has(rule.Field) {
			input[rule.Field] = string(ctx.QueryArgs().Peek(rule.Field))
		}
	}
	return input
}
