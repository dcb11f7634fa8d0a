package rest

import (
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists every /api operation with its bound parameters.
type ServerInterface interface {
	ListTemplates(c *fiber.Ctx, params dto.ListTemplatesParams) error
	CreateTemplate(c *fiber.Ctx) error
	GetTemplate(c *fiber.Ctx, id uint64) error
	UpdateTemplate(c *fiber.Ctx, id uint64) error
	DeleteTemplate(c *fiber.Ctx, id uint64) error
	PreviewTemplate(c *fiber.Ctx, id uint64) error

	ListBuilders(c *fiber.Ctx, params dto.ListParams) error
	CreateBuilder(c *fiber.Ctx) error
	EnrichContent(c *fiber.Ctx) error
	GetBuilder(c *fiber.Ctx, id uint64) error
	UpdateBuilder(c *fiber.Ctx, id uint64) error
	DeleteBuilder(c *fiber.Ctx, id uint64) error
	SaveLayout(c *fiber.Ctx, id uint64) error
	RenderBuilder(c *fiber.Ctx, id uint64) error
	PreviewBuilder(c *fiber.Ctx, id uint64) error

	ListEditors(c *fiber.Ctx, params dto.ListParams) error
	EditorStatistics(c *fiber.Ctx) error
	ListComponents(c *fiber.Ctx) error
	ListEditorTemplates(c *fiber.Ctx) error
	SaveEditor(c *fiber.Ctx) error
	SaveEditorTemplate(c *fiber.Ctx) error
	GetEditor(c *fiber.Ctx, id uint64) error
	UpdateEditor(c *fiber.Ctx, id uint64) error
	DeleteEditor(c *fiber.Ctx, id uint64) error
	DuplicateEditor(c *fiber.Ctx, id uint64) error

	ListRSVPs(c *fiber.Ctx, params dto.ListParams) error
	CreateRSVP(c *fiber.Ctx) error
	DeleteRSVP(c *fiber.Ctx, id uint64) error

	ListPublishes(c *fiber.Ctx, params dto.ListParams) error
	CreatePublish(c *fiber.Ctx) error
	GetPublish(c *fiber.Ctx, id uint64) error
}

// ServerInterfaceWrapper converts fiber contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ParamError is returned when a path or query parameter can't be bound.
type ParamError struct {
	Param string
	Err   error
}

func (e ParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.Param, e.Err)
}

func (e ParamError) Unwrap() error { return e.Err }

var errIDOutOfRange = errors.New("id out of range")

func bindID(c *fiber.Ctx) (uint64, error) {
	var id uint64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Params("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, ParamError{Param: "id", Err: err}
	}
	// ids are bigserial
	if id > math.MaxInt64 {
		return 0, ParamError{Param: "id", Err: errIDOutOfRange}
	}
	return id, nil
}

func queryValues(c *fiber.Ctx) (url.Values, error) {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return nil, ParamError{Param: "query", Err: err}
	}
	return query, nil
}

func bindListParams(c *fiber.Ctx) (dto.ListParams, error) {
	var params dto.ListParams
	query, err := queryValues(c)
	if err != nil {
		return params, err
	}
	if err = runtime.BindQueryParameter("form", true, false, "per_page", query, &params.PerPage); err != nil {
		return params, ParamError{Param: "per_page", Err: err}
	}
	return params, nil
}

func (w *ServerInterfaceWrapper) withID(handler func(*fiber.Ctx, uint64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bindID(c)
		if err != nil {
			return err
		}
		return handler(c, id)
	}
}

func (w *ServerInterfaceWrapper) withListParams(handler func(*fiber.Ctx, dto.ListParams) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := bindListParams(c)
		if err != nil {
			return err
		}
		return handler(c, params)
	}
}

func (w *ServerInterfaceWrapper) ListTemplates(c *fiber.Ctx) error {
	var params dto.ListTemplatesParams
	query, err := queryValues(c)
	if err != nil {
		return err
	}
	if err = runtime.BindQueryParameter("form", true, false, "type", query, &params.Type); err != nil {
		return ParamError{Param: "type", Err: err}
	}
	if err = runtime.BindQueryParameter("form", true, false, "per_page", query, &params.PerPage); err != nil {
		return ParamError{Param: "per_page", Err: err}
	}
	return w.Handler.ListTemplates(c, params)
}

// RegisterHandlers mounts the route table on router. Static segments are
// registered ahead of :id so that they are never bound as ids.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.Get("/templates", w.ListTemplates)
	router.Post("/templates", si.CreateTemplate)
	router.Get("/templates/:id", w.withID(si.GetTemplate))
	router.Put("/templates/:id", w.withID(si.UpdateTemplate))
	router.Delete("/templates/:id", w.withID(si.DeleteTemplate))
	router.Get("/templates/:id/preview", w.withID(si.PreviewTemplate))

	router.Get("/builders", w.withListParams(si.ListBuilders))
	router.Post("/builders", si.CreateBuilder)
	router.Post("/builders/enrich-content", si.EnrichContent)
	router.Get("/builders/:id", w.withID(si.GetBuilder))
	router.Put("/builders/:id", w.withID(si.UpdateBuilder))
	router.Delete("/builders/:id", w.withID(si.DeleteBuilder))
	router.Post("/builders/:id/save-layout", w.withID(si.SaveLayout))
	router.Get("/builders/:id/render", w.withID(si.RenderBuilder))
	router.Get("/builders/:id/preview", w.withID(si.PreviewBuilder))

	router.Get("/editors", w.withListParams(si.ListEditors))
	router.Get("/editors/statistics", si.EditorStatistics)
	router.Get("/editors/components", si.ListComponents)
	router.Get("/editors/templates", si.ListEditorTemplates)
	router.Post("/editors/save", si.SaveEditor)
	router.Post("/editors/save-template", si.SaveEditorTemplate)
	router.Get("/editors/:id", w.withID(si.GetEditor))
	router.Put("/editors/:id", w.withID(si.UpdateEditor))
	router.Delete("/editors/:id", w.withID(si.DeleteEditor))
	router.Post("/editors/:id/duplicate", w.withID(si.DuplicateEditor))

	router.Get("/rsvps", w.withListParams(si.ListRSVPs))
	router.Post("/rsvps", si.CreateRSVP)
	router.Delete("/rsvps/:id", w.withID(si.DeleteRSVP))

	router.Get("/publishes", w.withListParams(si.ListPublishes))
	router.Post("/publishes", si.CreatePublish)
	router.Get("/publishes/:id", w.withID(si.GetPublish))
}
