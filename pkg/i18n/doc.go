// Package i18n translates validation messages and other user-facing strings.
//
// Translations are nested maps keyed by language and loaded once through a
// TranslationAdapter. Keys use dot notation ("validation.email") and templates
// use named placeholders in the form %{name}.
//
// The package ships a catalogue for English and German under locales/, exposed
// by DefaultAdapter:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.DefaultAdapter())
//	if err != nil {
//		return err
//	}
//
//	lang := tr.Match("de-CH", "en") // "de"
//	for _, msg := range tr.Localize(lang, err) {
//		fmt.Println(msg)
//	}
//
// Localize and ValidationMessage render validator.ValidationErrors. Field
// names are translated through the "fields.<field>" keys when present.
//
// Other sources can be plugged in with MapAdapter or NewFSAdapter, which reads
// every YAML file of a directory in any fs.FS (os.DirFS, embed.FS, fstest.MapFS).
//
// A Translator is safe for concurrent use.
package i18n
