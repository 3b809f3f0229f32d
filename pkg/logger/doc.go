// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute
// constructors, and transparent injection of values stored in
// context.Context.
//
// The single factory New creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static attributes,
// and ContextExtractor callbacks that pull request-scoped values into every
// record at log time.
//
// # Batch Correlation
//
// The processor stamps each batch with an identifier via WithBatchID.
// Registering BatchIDExtractor makes every log line emitted during that
// batch carry a "batch_id" attribute, so validation reports, sink failures,
// and batch summaries correlate without threading the identifier by hand:
//
//	log := logger.New(
//	    logger.WithProduction("importer"),
//	    logger.WithContextExtractors(logger.BatchIDExtractor),
//	)
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("importer"),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "batch processed",
//	    logger.RecordCount(len(res.Records)),
//	    logger.ReportCount(len(res.Reports)),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error is
// non-nil, so they can be passed unconditionally:
//
//	log.Info("shipped", logger.Error(err))
package logger
