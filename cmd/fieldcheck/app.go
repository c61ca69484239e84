package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/contactkit/pkg/environment"
	"github.com/dmitrymomot/contactkit/pkg/i18n"
	"github.com/dmitrymomot/contactkit/pkg/logger"
	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// app is bound into every command's Run method.
type app struct {
	ctx  context.Context
	log  *slog.Logger
	tr   *i18n.Translator
	lang string
	json bool
	prep func(string) string

	stdin  io.Reader
	stdout io.Writer
}

func newApp(ctx context.Context, settings Settings, cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	env, err := environment.Parse(settings.Env)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(settings, env, stderr)
	if err != nil {
		return nil, err
	}
	ctx = environment.WithContext(ctx, env)

	tr, err := newTranslator(ctx, log)
	if err != nil {
		return nil, err
	}

	requested := lo.Ternary(cli.Lang != "", cli.Lang, settings.Lang)
	lang := tr.Match(requested)
	ctx = i18n.SetLocale(ctx, lang)
	log.DebugContext(ctx, "translator ready", logger.Locale(lang), slog.String("requested", requested))

	return &app{
		ctx:    ctx,
		log:    log,
		tr:     tr,
		lang:   lang,
		json:   cli.JSON,
		prep:   inputTransform(cli.Trim, cli.Squash),
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

// result is one checked value. Input is nil for a missing value.
type result struct {
	Field   string   `json:"field"`
	Input   *string  `json:"input"`
	Valid   bool     `json:"valid"`
	Value   string   `json:"value,omitempty"`
	Key     string   `json:"key,omitempty"`
	Details []string `json:"details,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// inputs returns values, or the lines of stdin when values is empty.
func (a *app) inputs(values []string) ([]string, error) {
	if len(values) > 0 {
		return values, nil
	}
	var lines []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

// displayText keeps accepted values on one terminal line.
var displayText = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

// inputTransform builds the transformation applied before validation.
// Validation itself never changes its input.
func inputTransform(trim, squash bool) func(string) string {
	var steps []func(string) string
	if trim {
		steps = append(steps, sanitizer.Trim)
	}
	if squash {
		steps = append(steps, sanitizer.NormalizeWhitespace)
	}
	return sanitizer.Compose(steps...)
}

func (a *app) prepare(raw string) string {
	return sanitizer.Apply(raw, a.prep)
}

// checkAll runs field over every input and prints the results.
func (a *app) checkAll(field string, values []string) error {
	values, err := a.inputs(values)
	if err != nil {
		return err
	}
	results := lo.Map(values, func(raw string, _ int) result {
		return a.check(field, lo.ToPtr(raw))
	})
	return a.report(results)
}

// check validates raw as field. A nil raw is a missing value.
func (a *app) check(field string, raw *string) result {
	chk := checkers[field]
	res := result{Field: field, Input: raw}

	fieldName := a.tr.FieldName(a.lang, field)
	if raw == nil {
		res.Errors = []string{a.tr.Tc(a.ctx, "contact.missing", "field", fieldName)}
		a.log.DebugContext(a.ctx, "missing value", logger.Field(field), logger.Kind("nil"))
		return res
	}

	out, err := chk(a, a.prepare(*raw))
	if err != nil {
		res.Errors = a.tr.Localize(a.lang, err)
		keys := lo.Map(validator.ExtractValidationErrors(err), func(ve validator.ValidationError, _ int) string {
			return ve.TranslationKey
		})
		a.log.DebugContext(a.ctx, "invalid value",
			logger.Field(field), logger.Kind("invalid_format"), logger.Violations(lo.Uniq(keys)))
		return res
	}

	res.Valid = true
	res.Value = out.value
	res.Key = out.key
	res.Details = out.details
	a.log.DebugContext(a.ctx, "valid value", logger.Field(field), logger.Value(out.masked))
	return res
}

// report prints results and returns errInvalid when any of them failed.
func (a *app) report(results []result) error {
	for _, res := range results {
		if err := a.print(res); err != nil {
			return err
		}
	}
	invalid := lo.CountBy(results, func(r result) bool { return !r.Valid })
	if invalid > 0 {
		a.log.InfoContext(a.ctx, "check finished", slog.Int("checked", len(results)), slog.Int("invalid", invalid))
		return errInvalid
	}
	return nil
}

func (a *app) print(res result) error {
	if a.json {
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, string(b))
		return err
	}

	fieldName := a.tr.FieldName(a.lang, res.Field)
	var b strings.Builder
	switch {
	case res.Valid:
		b.WriteString(a.tr.Tc(a.ctx, "contact.valid", "field", fieldName, "value", displayText(res.Value)))
		for _, d := range res.Details {
			b.WriteString("\n  " + d)
		}
	case res.Input == nil:
		b.WriteString(res.Errors[0])
	default:
		b.WriteString(a.tr.Tc(a.ctx, "contact.invalid", "field", fieldName, "value", fmt.Sprintf("%q", *res.Input)))
		for _, e := range res.Errors {
			b.WriteString("\n  - " + e)
		}
	}
	_, err := fmt.Fprintln(a.stdout, b.String())
	return err
}
