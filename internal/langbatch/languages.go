package langbatch

import (
	"context"
	"path"

	"langcache/internal/manifest"
)

// LanguageFilePath returns the cache sub path of an application language file.
func LanguageFilePath(application, language string) string {
	return path.Join(application, language+".php")
}

// GenerateLanguageFiles fetches every configured language of every configured
// application, in configuration order, into <root>/cache/<app>/<lang>.php.
func (g *Generator) GenerateLanguageFiles(ctx context.Context) (err error) {
	apps, err := lookupApplications(g.settings)
	if err != nil {
		return err
	}
	r, err := g.begin(ctx, PipelineLanguages)
	if err != nil {
		return err
	}
	start := g.now()
	defer func() { err = g.finish(r, start, err) }()

	g.printf("\nGenerating language files\n")
	for _, app := range apps {
		g.printf("[APPLICATION: %s]\n", app.ID)
		for _, lang := range app.Languages {
			if err := r.ctx.Err(); err != nil {
				return err
			}
			g.printf("\t[LANGUAGE: %s]", lang)

			content, err := g.client.LanguageFile(r.ctx, lang)
			if err != nil {
				return &FetchError{Step: StepLanguageFile, Application: app.ID, Language: lang, Cause: err}
			}

			entry := manifest.Entry{
				Path:     LanguageFilePath(app.ID, lang),
				Kind:     manifest.KindApplication,
				Target:   app.ID,
				Language: lang,
			}
			if dest, err := g.persist(r, entry, []byte(content)); err != nil {
				return &CacheWriteError{Application: app.ID, Language: lang, Path: dest, Cause: err}
			}
			g.printf(" OK\n")
		}
	}
	return nil
}
