package events

type TemplateDeleted struct {
	TemplateID uint64 `json:"templateID"`
}

func (e TemplateDeleted) GetType() string {
	return "TemplateDeleted"
}

type BuilderRendered struct {
	BuilderID  uint64 `json:"builderID"`
	TemplateID uint64 `json:"templateID"`
	UserID     string `json:"userID"`
}

func (e BuilderRendered) GetType() string {
	return "BuilderRendered"
}

type BuilderLayoutSaved struct {
	BuilderID    uint64 `json:"builderID"`
	RenderSource string `json:"renderSource,omitempty"`
}

func (e BuilderLayoutSaved) GetType() string {
	return "BuilderLayoutSaved"
}

type EditorDuplicated struct {
	SourceID uint64 `json:"sourceID"`
	EditorID uint64 `json:"editorID"`
	UserID   string `json:"userID"`
}

func (e EditorDuplicated) GetType() string {
	return "EditorDuplicated"
}
