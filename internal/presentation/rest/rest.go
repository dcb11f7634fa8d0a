package rest

import (
	"github.com/dhank77/undangan.love/internal/application"
	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/gofiber/fiber/v2"
)

var _ ServerInterface = (*Server)(nil)

type Server struct {
	commands *application.Collection
}

func NewServer(commands *application.Collection) *Server {
	return &Server{commands: commands}
}

func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return BadRequestError{Err: err}
	}
	return nil
}

func notFound(entity string, id uint64) error {
	return errs.NotFoundError{Entity: entity, ID: id}
}

func deleted(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: entity + " deleted"})
}

func (s *Server) ListTemplates(c *fiber.Ctx, params dto.ListTemplatesParams) error {
	templates, err := s.commands.ListTemplates.Query(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(templates)
}

func (s *Server) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	template, err := s.commands.CreateTemplate.Execute(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

func (s *Server) GetTemplate(c *fiber.Ctx, id uint64) error {
	template, err := s.commands.GetTemplate.Query(c.UserContext(), id)
	if err != nil {
		return err
	}
	if template == nil {
		return notFound("template", id)
	}
	return c.Status(fiber.StatusOK).JSON(template)
}

func (s *Server) UpdateTemplate(c *fiber.Ctx, id uint64) error {
	var req dto.UpdateTemplateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	template, err := s.commands.UpdateTemplate.Execute(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(template)
}

func (s *Server) DeleteTemplate(c *fiber.Ctx, id uint64) error {
	if err := s.commands.DeleteTemplate.Execute(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c, "template")
}

func (s *Server) PreviewTemplate(c *fiber.Ctx, id uint64) error {
	html, err := s.commands.PreviewTemplate.Query(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.HTMLResponse{HTML: html})
}

func (s *Server) ListBuilders(c *fiber.Ctx, params dto.ListParams) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	builders, err := s.commands.ListBuilders.Query(c.UserContext(), identity.UserID, params.PerPage)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(builders)
}

func (s *Server) CreateBuilder(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateBuilderRequest
	if err = parseBody(c, &req); err != nil {
		return err
	}

	builder, err := s.commands.CreateBuilder.Execute(c.UserContext(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(builder)
}

func (s *Server) EnrichContent(c *fiber.Ctx) error {
	var req dto.EnrichContentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := s.commands.EnrichContent.Execute(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) GetBuilder(c *fiber.Ctx, id uint64) error {
	builder, err := s.commands.GetBuilder.Query(c.UserContext(), id)
	if err != nil {
		return err
	}
	if builder == nil {
		return notFound("builder", id)
	}
	return c.Status(fiber.StatusOK).JSON(builder)
}

func (s *Server) UpdateBuilder(c *fiber.Ctx, id uint64) error {
	var req dto.UpdateBuilderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	builder, err := s.commands.UpdateBuilder.Execute(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(builder)
}

func (s *Server) DeleteBuilder(c *fiber.Ctx, id uint64) error {
	if err := s.commands.DeleteBuilder.Execute(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c, "builder")
}

func (s *Server) SaveLayout(c *fiber.Ctx, id uint64) error {
	var req dto.SaveLayoutRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	builder, err := s.commands.SaveLayout.Execute(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(builder)
}

func (s *Server) RenderBuilder(c *fiber.Ctx, id uint64) error {
	html, err := s.commands.RenderPreview.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.HTMLResponse{HTML: html})
}

func (s *Server) PreviewBuilder(c *fiber.Ctx, id uint64) error {
	html, err := s.commands.RenderPreview.Execute(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(html)
}

func (s *Server) ListEditors(c *fiber.Ctx, params dto.ListParams) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	editors, err := s.commands.ListEditors.Query(c.UserContext(), identity.UserID, params.PerPage)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(editors)
}

func (s *Server) EditorStatistics(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	stats, err := s.commands.EditorStatistics.Query(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

func (s *Server) ListComponents(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(s.commands.ListComponents.Query())
}

func (s *Server) ListEditorTemplates(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	templates, err := s.commands.ListEditorTemplates.Query(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(templates)
}

func (s *Server) SaveEditor(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req dto.SaveEditorRequest
	if err = parseBody(c, &req); err != nil {
		return err
	}

	editor, err := s.commands.SaveEditor.Execute(c.UserContext(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(editor)
}

func (s *Server) SaveEditorTemplate(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req dto.SaveEditorTemplateRequest
	if err = parseBody(c, &req); err != nil {
		return err
	}

	editor, err := s.commands.SaveEditorTemplate.Execute(c.UserContext(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(editor)
}

func (s *Server) GetEditor(c *fiber.Ctx, id uint64) error {
	editor, err := s.commands.GetEditor.Query(c.UserContext(), id)
	if err != nil {
		return err
	}
	if editor == nil {
		return notFound("editor", id)
	}
	return c.Status(fiber.StatusOK).JSON(editor)
}

func (s *Server) UpdateEditor(c *fiber.Ctx, id uint64) error {
	var req dto.UpdateEditorRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	editor, err := s.commands.UpdateEditor.Execute(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(editor)
}

func (s *Server) DeleteEditor(c *fiber.Ctx, id uint64) error {
	if err := s.commands.DeleteEditor.Execute(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c, "editor")
}

func (s *Server) DuplicateEditor(c *fiber.Ctx, id uint64) error {
	var req dto.DuplicateEditorRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	editor, err := s.commands.DuplicateEditor.Execute(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(editor)
}

func (s *Server) ListRSVPs(c *fiber.Ctx, params dto.ListParams) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	rsvps, err := s.commands.ListRSVPs.Query(c.UserContext(), identity.UserID, params.PerPage)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(rsvps)
}

func (s *Server) CreateRSVP(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateRSVPRequest
	if err = parseBody(c, &req); err != nil {
		return err
	}

	rsvp, err := s.commands.CreateRSVP.Execute(c.UserContext(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(rsvp)
}

func (s *Server) DeleteRSVP(c *fiber.Ctx, id uint64) error {
	if err := s.commands.DeleteRSVP.Execute(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c, "rsvp")
}

func (s *Server) ListPublishes(c *fiber.Ctx, params dto.ListParams) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	publishes, err := s.commands.ListPublishes.Query(c.UserContext(), identity.UserID, params.PerPage)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(publishes)
}

func (s *Server) CreatePublish(c *fiber.Ctx) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreatePublishRequest
	if err = parseBody(c, &req); err != nil {
		return err
	}

	publish, err := s.commands.CreatePublish.Execute(c.UserContext(), identity.UserID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(publish)
}

func (s *Server) GetPublish(c *fiber.Ctx, id uint64) error {
	publish, err := s.commands.GetPublish.Query(c.UserContext(), id)
	if err != nil {
		return err
	}
	if publish == nil {
		return notFound("publish", id)
	}
	return c.Status(fiber.StatusOK).JSON(publish)
}
