package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/apiref"
	"github.com/fwojciec/apiref/mock"
	refslog "github.com/fwojciec/apiref/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPackageLoader_GetPackage(t *testing.T) {
	t.Parallel()

	ref := apiref.Reference{ScopeName: "@acme", PackageName: "foo", ExportName: "Widget"}

	t.Run("logs load with export count and hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PackageLoader{
			GetPackageFn: func(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error) {
				return &apiref.DocPackage{
					Name:        "@acme/foo",
					ContentHash: "abc123",
					Exports:     map[string]*apiref.DocItem{"Widget": {Kind: apiref.KindClass}},
				}, nil
			},
		}

		loader := refslog.NewLoggingPackageLoader(inner, logger)
		pkg, err := loader.GetPackage(ref, nil)

		require.NoError(t, err)
		require.NotNil(t, pkg)
		output := buf.String()
		assert.Contains(t, output, "package load")
		assert.Contains(t, output, "package=@acme/foo")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "exports=1")
		assert.Contains(t, output, "hash=abc123")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and forwards reported messages", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PackageLoader{
			GetPackageFn: func(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error) {
				report("package missing")
				return nil, nil
			},
		}

		var reported []string
		loader := refslog.NewLoggingPackageLoader(inner, logger)
		pkg, err := loader.GetPackage(ref, func(message string) {
			reported = append(reported, message)
		})

		require.NoError(t, err)
		assert.Nil(t, pkg)
		assert.Equal(t, []string{"package missing"}, reported)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "unresolved reference")
		assert.Contains(t, output, "found=false")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PackageLoader{
			GetPackageFn: func(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error) {
				return nil, errors.New("manifest broken")
			},
		}

		loader := refslog.NewLoggingPackageLoader(inner, logger)
		_, err := loader.GetPackage(ref, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"manifest broken\"")
	})
}
