// Package langbatch runs the two language caching pipelines.
//
// GenerateLanguageFiles walks the configured applications and their
// languages and writes one PHP language file per pair. GenerateAppletLanguageXMLFiles
// asks the API which languages each applet has and writes one XML bundle per
// language. Both pipelines fetch through languageapi, write through cachefs,
// record each entry with a Recorder and copy it to a Mirror.
//
// The first failure ends the run. Progress lines already printed are the only
// indication of how far it got.
package langbatch
