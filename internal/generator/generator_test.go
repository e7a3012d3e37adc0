package generator

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dreambig/appgen/internal/application"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []GenerateEvent
}

func (r *recordingObserver) ObserveGenerate(_ context.Context, e GenerateEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestGenerate_WritesDocument(t *testing.T) {
	rec := &recordingObserver{}
	gen := New(rec)
	path := filepath.Join(t.TempDir(), "app.docx")

	res, err := gen.Generate(context.Background(), &application.ApplicationData{ProjectName: "P"}, path)
	require.NoError(t, err)
	assert.Equal(t, path, res.OutputPath)
	assert.Positive(t, res.Bytes)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(res.Bytes), info.Size())

	require.Len(t, rec.events, 1)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, path, rec.events[0].OutputPath)
	assert.Equal(t, res.Bytes, rec.events[0].Bytes)
}

func TestGenerate_EmptyDataStillProducesForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.docx")
	_, err := New().Generate(context.Background(), &application.ApplicationData{}, path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerate_InputErrors(t *testing.T) {
	rec := &recordingObserver{}
	gen := New(rec)

	_, err := gen.Generate(context.Background(), &application.ApplicationData{}, "  ")
	assert.ErrorIs(t, err, ErrMissingOutputPath)

	_, err = gen.Generate(context.Background(), nil, filepath.Join(t.TempDir(), "x.docx"))
	assert.ErrorIs(t, err, ErrMissingData)

	require.Len(t, rec.events, 2)
	for _, e := range rec.events {
		assert.False(t, e.Success)
		assert.Error(t, e.Err)
	}
}

func TestGenerate_UnwritablePathLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "app.docx")

	_, err := New().Generate(context.Background(), &application.ApplicationData{}, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, path)
}

func TestGenerate_CancelledContextSkipsWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "app.docx")

	_, err := New().Generate(ctx, &application.ApplicationData{}, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestLogObserver_WritesStructuredEntries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	gen := New(NewLogObserver(zap.New(core)))

	path := filepath.Join(t.TempDir(), "app.docx")
	_, err := gen.Generate(context.Background(), &application.ApplicationData{}, path)
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), &application.ApplicationData{}, "")
	require.Error(t, err)

	entries := logs.FilterMessage("generate_application").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, path, entries[0].ContextMap()["output_path"])
	assert.Equal(t, true, entries[0].ContextMap()["success"])
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, ErrMissingOutputPath.Error(), entries[1].ContextMap()["error"])
}

func TestNewLogObserver_NilLogger(t *testing.T) {
	assert.Equal(t, NoopObserver{}, NewLogObserver(nil))
}
