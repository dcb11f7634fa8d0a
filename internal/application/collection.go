package application

import (
	"github.com/dhank77/undangan.love/internal/application/commands/ai"
	"github.com/dhank77/undangan.love/internal/application/commands/builder"
	"github.com/dhank77/undangan.love/internal/application/commands/editor"
	"github.com/dhank77/undangan.love/internal/application/commands/publish"
	"github.com/dhank77/undangan.love/internal/application/commands/rsvp"
	"github.com/dhank77/undangan.love/internal/application/commands/template"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/application/processors"
	"github.com/dhank77/undangan.love/internal/application/query"
	"github.com/dhank77/undangan.love/internal/infra/config"
)

type Collection struct {
	CreateTemplate *template.CreateTemplate
	UpdateTemplate *template.UpdateTemplate
	DeleteTemplate *template.DeleteTemplate

	CreateBuilder *builder.CreateBuilder
	UpdateBuilder *builder.UpdateBuilder
	DeleteBuilder *builder.DeleteBuilder
	SaveLayout    *builder.SaveLayout
	RenderPreview *builder.RenderPreview
	EnrichContent *ai.EnrichContent

	SaveEditor         *editor.SaveEditor
	SaveEditorTemplate *editor.SaveEditorTemplate
	UpdateEditor       *editor.UpdateEditor
	DeleteEditor       *editor.DeleteEditor
	DuplicateEditor    *editor.DuplicateEditor

	CreateRSVP    *rsvp.CreateRSVP
	DeleteRSVP    *rsvp.DeleteRSVP
	CreatePublish *publish.CreatePublish

	ListTemplates       *query.ListTemplates
	GetTemplate         *query.GetTemplate
	PreviewTemplate     *query.PreviewTemplate
	ListBuilders        *query.ListBuilders
	GetBuilder          *query.GetBuilder
	ListEditors         *query.ListEditors
	ListEditorTemplates *query.ListEditorTemplates
	GetEditor           *query.GetEditor
	EditorStatistics    *query.EditorStatistics
	ListComponents      *query.ListComponents
	ListRSVPs           *query.ListRSVPs
	ListPublishes       *query.ListPublishes
	GetPublish          *query.GetPublish
}

type Deps struct {
	Store    interfaces.Store
	Cache    interfaces.PreviewCache
	Catalog  interfaces.ComponentCatalog
	Enricher interfaces.ContentEnricher
	Phone    interfaces.PhoneNormalizer
	Pages    config.PaginationConfig
}

func NewCollection(d Deps) *Collection {
	return &Collection{
		CreateTemplate: template.NewCreateTemplate(d.Store),
		UpdateTemplate: template.NewUpdateTemplate(d.Store, d.Cache),
		DeleteTemplate: template.NewDeleteTemplate(d.Store, d.Cache),

		CreateBuilder: builder.NewCreateBuilder(d.Store),
		UpdateBuilder: builder.NewUpdateBuilder(d.Store),
		DeleteBuilder: builder.NewDeleteBuilder(d.Store),
		SaveLayout:    builder.NewSaveLayout(d.Store),
		RenderPreview: builder.NewRenderPreview(d.Store),
		EnrichContent: ai.NewEnrichContent(d.Enricher),

		SaveEditor:         editor.NewSaveEditor(d.Store),
		SaveEditorTemplate: editor.NewSaveEditorTemplate(d.Store),
		UpdateEditor:       editor.NewUpdateEditor(d.Store),
		DeleteEditor:       editor.NewDeleteEditor(d.Store),
		DuplicateEditor:    editor.NewDuplicateEditor(d.Store),

		CreateRSVP:    rsvp.NewCreateRSVP(d.Store, d.Phone),
		DeleteRSVP:    rsvp.NewDeleteRSVP(d.Store),
		CreatePublish: publish.NewCreatePublish(d.Store),

		ListTemplates:       query.NewListTemplates(d.Store, d.Pages),
		GetTemplate:         query.NewGetTemplate(d.Store),
		PreviewTemplate:     query.NewPreviewTemplate(d.Store, d.Cache),
		ListBuilders:        query.NewListBuilders(d.Store, d.Pages),
		GetBuilder:          query.NewGetBuilder(d.Store),
		ListEditors:         query.NewListEditors(d.Store, d.Pages),
		ListEditorTemplates: query.NewListEditorTemplates(d.Store),
		GetEditor:           query.NewGetEditor(d.Store),
		EditorStatistics:    query.NewEditorStatistics(d.Store),
		ListComponents:      query.NewListComponents(d.Catalog),
		ListRSVPs:           query.NewListRSVPs(d.Store, d.Pages),
		ListPublishes:       query.NewListPublishes(d.Store, d.Pages),
		GetPublish:          query.NewGetPublish(d.Store),
	}
}

// Processors handle outbox events after they are relayed.
type Processors struct {
	ArchiveSnapshot *processors.ArchiveSnapshot
}

func NewProcessors(store interfaces.Store, storage interfaces.SnapshotStorage) *Processors {
	return &Processors{
		ArchiveSnapshot: processors.NewArchiveSnapshot(store, storage),
	}
}
