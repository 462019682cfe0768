package langbatch

import (
	"context"
	"strings"

	"langcache/internal/config"
	"langcache/internal/logging"
	"langcache/internal/manifest"
)

// AppletFilePath returns the cache sub path of an applet language XML. The
// applet is not part of the path, so applets sharing a language share a file.
func AppletFilePath(language string) string {
	return "flash/lang_" + language + ".xml"
}

// GenerateAppletLanguageXMLFiles discovers the languages of every applet and
// caches one XML file per language under <root>/cache/flash.
func (g *Generator) GenerateAppletLanguageXMLFiles(ctx context.Context) (err error) {
	applets, err := lookupApplets(g.settings)
	if err != nil {
		return err
	}
	r, err := g.begin(ctx, PipelineApplets)
	if err != nil {
		return err
	}
	start := g.now()
	defer func() { err = g.finish(r, start, err) }()

	g.printf("\nGetting applet language XMLs..\n")
	for _, applet := range applets {
		if err := g.cacheApplet(r, applet); err != nil {
			return err
		}
	}
	g.printf("\nApplet language XMLs generated.\n")
	return nil
}

func (g *Generator) cacheApplet(r *run, applet config.Applet) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	g.printf(" Getting > %s (%s) language xmls..\n", applet.ID, applet.Directory)

	languages, err := g.client.AppletLanguages(r.ctx, applet.ID)
	if err != nil {
		return &FetchError{Step: StepAppletLanguages, Applet: applet.ID, Cause: err}
	}
	if len(languages) == 0 {
		return &DiscoveryEmptyError{Applet: applet.ID}
	}
	g.printf(" - Available languages: %s\n", strings.Join(languages, ", "))
	r.logger.Info("applet languages discovered",
		logging.String(logging.FieldTarget, applet.ID),
		logging.Int("languages", len(languages)),
	)

	for _, lang := range languages {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		xml, err := g.client.AppletLanguageFile(r.ctx, applet.ID, lang)
		if err != nil {
			return &FetchError{Step: StepAppletLanguageFile, Applet: applet.ID, Language: lang, Cause: err}
		}

		entry := manifest.Entry{
			Path:     AppletFilePath(lang),
			Kind:     manifest.KindApplet,
			Target:   applet.ID,
			Language: lang,
		}
		dest, err := g.persist(r, entry, []byte(xml))
		if err != nil {
			return &CacheWriteError{Applet: applet.ID, Language: lang, Path: dest, Cause: err}
		}
		g.printf(" OK saving %s was successful.\n", dest)
	}
	g.printf(" < %s (%s) language xml cached.\n", applet.ID, applet.Directory)
	return nil
}
