package ingest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/storage/mocks"
)

func TestPullExportsFetchesOnlyExportFiles(t *testing.T) {
	objects := make(chan minio.ObjectInfo, 3)
	objects <- minio.ObjectInfo{Key: "incoming/products.csv"}
	objects <- minio.ObjectInfo{Key: "incoming/stocktake.xlsx"}
	objects <- minio.ObjectInfo{Key: "incoming/readme.txt"}
	close(objects)

	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "exports", mock.Anything).
		Return((<-chan minio.ObjectInfo)(objects))
	client.On("GetObject", mock.Anything, "exports", "incoming/products.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("Handle,Title\n")), nil)
	client.On("GetObject", mock.Anything, "exports", "incoming/stocktake.xlsx", mock.Anything).
		Return(io.NopCloser(strings.NewReader("binary")), nil)

	dir := t.TempDir()
	svc := NewService(zap.NewNop(), client, "exports", "incoming/", nil)

	fetched, err := svc.PullExports(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, fetched)
	assert.FileExists(t, filepath.Join(dir, "products.csv"))
	assert.FileExists(t, filepath.Join(dir, "stocktake.xlsx"))
	assert.NoFileExists(t, filepath.Join(dir, "readme.txt"))
	client.AssertExpectations(t)
}

func TestPushAggregateUploadsOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.os")
	require.NoError(t, os.WriteFile(path, []byte(`{"stores":[]}`), 0o644))

	client := &mocks.Client{}
	client.On("PutObject", mock.Anything, "exports", "output.os", mock.Anything, int64(13), mock.Anything).
		Return(minio.UploadInfo{Key: "output.os"}, nil)

	svc := NewService(zap.NewNop(), client, "exports", "incoming/", nil)
	require.NoError(t, svc.PushAggregate(context.Background(), path, "output.os"))
	client.AssertExpectations(t)
}

func TestStorageOperationsWithoutClient(t *testing.T) {
	svc := NewService(zap.NewNop(), nil, "", "", nil)

	_, err := svc.PullExports(context.Background(), t.TempDir())
	assert.Error(t, err)
	assert.Error(t, svc.PushAggregate(context.Background(), "output.os", "output.os"))
}
