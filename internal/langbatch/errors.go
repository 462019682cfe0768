package langbatch

import "fmt"

// Step identifies which remote call a FetchError came from.
type Step string

const (
	StepLanguageFile       Step = "language_file"
	StepAppletLanguages    Step = "applet_languages"
	StepAppletLanguageFile Step = "applet_language_file"
)

// FetchError wraps a language API failure with the target it was fetching.
// Unwrap exposes the languageapi error.
type FetchError struct {
	Step        Step
	Application string
	Applet      string
	Language    string
	Cause       error
}

func (e *FetchError) Error() string {
	switch e.Step {
	case StepAppletLanguages:
		return fmt.Sprintf("Getting languages for applet (%s) was unsuccessful %s", e.Applet, causeText(e.Cause))
	case StepAppletLanguageFile:
		return fmt.Sprintf("Getting language xml for applet: (%s) on language: (%s) was unsuccessful: %s", e.Applet, e.Language, causeText(e.Cause))
	default:
		msg := fmt.Sprintf("Error during getting language file: (%s/%s)", e.Application, e.Language)
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return msg
	}
}

func (e *FetchError) Unwrap() error { return e.Cause }

// CacheWriteError reports a cache file that was not fully written, or a
// follow-up step (manifest, mirror) for it that failed.
type CacheWriteError struct {
	Applet      string
	Application string
	Language    string
	Path        string
	Cause       error
}

func (e *CacheWriteError) Error() string {
	var msg string
	if e.Applet != "" {
		msg = fmt.Sprintf("Unable to save applet: (%s) language: (%s) xml (%s)!", e.Applet, e.Language, e.Path)
	} else {
		msg = "Unable to generate language file!"
	}
	if e.Cause != nil {
		msg += " " + e.Cause.Error()
	}
	return msg
}

func (e *CacheWriteError) Unwrap() error { return e.Cause }

// DiscoveryEmptyError reports an applet that has no languages available.
type DiscoveryEmptyError struct {
	Applet string
}

func (e *DiscoveryEmptyError) Error() string {
	return fmt.Sprintf("There is no available languages for the %s applet.", e.Applet)
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
