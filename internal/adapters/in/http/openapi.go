package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"

	_ "embed"
)

//go:embed openapi.yml
var openAPISpec []byte

// LoadOpenAPIDocument parses and validates the embedded API document.
func LoadOpenAPIDocument() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// OpenAPIHandler serves the API document as JSON.
func OpenAPIHandler(doc *openapi3.T) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	}
}

// RequestValidationMiddleware rejects requests whose shape does not match
// the API document before they reach a handler. Unknown routes pass through
// untouched so echo can produce its own 404.
func RequestValidationMiddleware(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, pathParams, findErr := router.FindRoute(ctx.Request())
			if findErr != nil {
				if findErr == routers.ErrPathNotFound || findErr == routers.ErrMethodNotAllowed {
					return next(ctx)
				}
				return findErr
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    ctx.Request(),
				PathParams: pathParams,
				Route:      route,
			}

			if validateErr := openapi3filter.ValidateRequest(ctx.Request().Context(), input); validateErr != nil {
				cid := correlationID(ctx)
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:          "INVALID_REQUEST",
					Message:       validateErr.Error(),
					CorrelationID: cid.String(),
				})
			}

			return next(ctx)
		}
	}, nil
}
