// Package slog provides log/slog decorators for apiref services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/apiref"
)

// Ensure LoggingPackageLoader implements apiref.PackageLoader.
var _ apiref.PackageLoader = (*LoggingPackageLoader)(nil)

// LoggingPackageLoader wraps a PackageLoader with logging.
type LoggingPackageLoader struct {
	next   apiref.PackageLoader
	logger *slog.Logger
}

// NewLoggingPackageLoader creates a new LoggingPackageLoader.
func NewLoggingPackageLoader(next apiref.PackageLoader, logger *slog.Logger) *LoggingPackageLoader {
	return &LoggingPackageLoader{next: next, logger: logger}
}

// GetPackage delegates to the wrapped loader and logs the outcome.
// Reported messages are logged as warnings before being passed on.
func (l *LoggingPackageLoader) GetPackage(ref apiref.Reference, report apiref.ReportFunc) (pkg *apiref.DocPackage, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"package", ref.CacheKey(),
			"found", pkg != nil,
			"duration", time.Since(begin),
		}
		if pkg != nil {
			attrs = append(attrs, "exports", len(pkg.Exports), "hash", pkg.ContentHash)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		l.logger.Info("package load", attrs...)
	}(time.Now())

	return l.next.GetPackage(ref, func(message string) {
		l.logger.Warn("unresolved reference", "ref", ref.String(), "message", message)
		report.Report(message)
	})
}
