// Package environment names the deployment environment a tool runs in and
// carries it through context.Context.
//
//	env, err := environment.Parse(os.Getenv("FIELDCHECK_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//
// LogExtractor returns a function with the signature of
// logger.ContextExtractor, so the environment can be added to every record:
//
//	log := logger.New(logger.WithContextExtractors(environment.LogExtractor()))
package environment
