package entity

import "github.com/dhank77/undangan.love/internal/domain/value"

// Component is a drag-and-drop block type offered by the visual editor.
type Component struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Icon         string       `json:"icon"`
	Description  string       `json:"description"`
	DefaultProps value.Object `json:"defaultProps"`
}
