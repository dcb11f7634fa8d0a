// Package seed loads the stock invitation templates.
package seed

import (
	"context"
	"embed"
	"fmt"
	"path"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/domain/consts"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/domain/value"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml layouts/*.html
var files embed.FS

// existingLimit bounds the lookup of already seeded names.
const existingLimit = 1000

type stockTemplate struct {
	Name         string         `yaml:"name"`
	ThumbnailURL string         `yaml:"thumbnail_url"`
	Layout       string         `yaml:"layout"`
	IsPremium    bool           `yaml:"is_premium"`
	Config       map[string]any `yaml:"config"`
}

// Templates returns the stock templates, ready to insert.
func Templates() ([]entity.Template, error) {
	doc, err := files.ReadFile("templates.yaml")
	if err != nil {
		return nil, err
	}
	var stock []stockTemplate
	if err = yaml.Unmarshal(doc, &stock); err != nil {
		return nil, fmt.Errorf("err parsing stock templates, %v", err)
	}

	templates := make([]entity.Template, 0, len(stock))
	for _, s := range stock {
		layout, err := files.ReadFile(path.Join("layouts", s.Layout))
		if err != nil {
			return nil, fmt.Errorf("err reading layout of %s, %v", s.Name, err)
		}
		config, err := value.FromAny(s.Config)
		if err != nil {
			return nil, fmt.Errorf("err reading config of %s, %v", s.Name, err)
		}
		thumbnail := s.ThumbnailURL
		templates = append(templates, entity.Template{
			Name:         s.Name,
			ThumbnailURL: &thumbnail,
			HTMLLayout:   string(layout),
			ConfigJSON:   &config,
			IsPremium:    s.IsPremium,
		})
	}
	return templates, nil
}

// Run inserts every stock template whose name is not taken yet, in one
// transaction, and returns the names it inserted.
func Run(ctx context.Context, store interfaces.Store) ([]string, error) {
	templates, err := Templates()
	if err != nil {
		return nil, err
	}

	var inserted []string
	err = store.InTx(ctx, func(repos interfaces.Repos) error {
		existing, err := repos.Templates.ListTemplates(ctx, consts.TemplatesAll, existingLimit)
		if err != nil {
			return err
		}
		taken := make(map[string]bool, len(existing))
		for _, t := range existing {
			taken[t.Name] = true
		}

		for i := range templates {
			if taken[templates[i].Name] {
				continue
			}
			if err = repos.Templates.InsertTemplate(ctx, &templates[i]); err != nil {
				return err
			}
			inserted = append(inserted, templates[i].Name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("err seeding templates, %w", err)
	}

	logrus.WithField("inserted", inserted).Info("seeded templates")
	return inserted, nil
}
