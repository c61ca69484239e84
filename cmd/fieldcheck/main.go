// Command fieldcheck validates contact field values and reports localized
// results.
//
//	fieldcheck phone "+65 9123 4567" "12ab"
//	fieldcheck --lang de --json offset +05:30 -13:00
//	echo '{"name":"Ada","phone":"+44 20 7946 0000"}' | fieldcheck record
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/contactkit/pkg/config"
	"github.com/dmitrymomot/contactkit/pkg/environment"
	"github.com/dmitrymomot/contactkit/pkg/i18n"
	"github.com/dmitrymomot/contactkit/pkg/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

// errInvalid reports that at least one checked value was rejected. It only
// drives the exit status; the details were already printed.
var errInvalid = errors.New("invalid value")

// Settings is read from the environment (and ./.env) before flags are parsed.
// Empty log settings follow the environment defaults.
type Settings struct {
	Lang      string `env:"FIELDCHECK_LANG" envDefault:"en"`
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT"`
	Env       string `env:"FIELDCHECK_ENV" envDefault:"development"`
}

// CLI is the top-level command structure for fieldcheck.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Lang    string           `help:"Message language (BCP 47). Defaults to FIELDCHECK_LANG." short:"l"`
	JSON    bool             `help:"Print results as JSON lines." name:"json"`
	Trim    bool             `help:"Trim surrounding whitespace before validating."`
	Squash  bool             `help:"Collapse whitespace runs, line breaks included, into single spaces before validating. Implies --trim."`

	Name         NameCmd         `cmd:"" help:"Check person names."`
	Phone        PhoneCmd        `cmd:"" help:"Check phone numbers and detect calling codes."`
	Email        EmailCmd        `cmd:"" help:"Check email addresses."`
	Address      AddressCmd      `cmd:"" help:"Check postal addresses."`
	Note         NoteCmd         `cmd:"" help:"Check notes."`
	Organisation OrganisationCmd `cmd:"" help:"Check organisation names."`
	Remark       RemarkCmd       `cmd:"" help:"Check remarks."`
	Offset       OffsetCmd       `cmd:"" help:"Check UTC offsets."`
	Record       RecordCmd       `cmd:"" help:"Check a JSON contact record."`
	Codes        CodesCmd        `cmd:"" help:"List known calling codes."`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes the selected command, and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var settings Settings
	if err := config.Load(&settings); err != nil {
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return 2
	}

	exited := false
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fieldcheck"),
		kong.Description("Validate contact field values."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " " + commit},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) {
			exited = true
			code = c
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exited {
		return code
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	a, err := newApp(ctx, settings, &cli, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return 2
	}

	kctx.Bind(a)
	switch err := kctx.Run(); {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return 1
	default:
		a.log.ErrorContext(a.ctx, "command failed", logger.Error(err))
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return 2
	}
}

func newLogger(settings Settings, env environment.Environment, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, "fieldcheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(environment.LogExtractor()),
	}
	if settings.LogLevel != "" {
		level, err := logger.ParseLevel(settings.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if settings.LogFormat != "" {
		format, err := logger.ParseFormat(settings.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func newTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.DefaultAdapter(),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(true),
	)
}
