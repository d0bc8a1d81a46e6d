package reports

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/filestorages"
	"access-log-analyzer/internal/shared/filestorages/mocks"
	"access-log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const expectedCSV = `Requests per IP
IP Address,Request Count
203.0.113.5,11
192.168.1.10,3

Most Accessed Endpoint
Endpoint,Access Count
/login,11

Suspicious Activity
IP Address,Failed Login Count
203.0.113.5,11
`

func TestEncodeCSV(t *testing.T) {
	t.Parallel()

	data, err := EncodeCSV(newTestReport())
	require.NoError(t, err)
	assert.Equal(t, expectedCSV, string(data))
}

func TestEncodeCSV_EmptyViews(t *testing.T) {
	t.Parallel()

	data, err := EncodeCSV(&models.Report{})
	require.NoError(t, err)
	assert.Equal(t, `Requests per IP
IP Address,Request Count

Most Accessed Endpoint
Endpoint,Access Count

Suspicious Activity
IP Address,Failed Login Count
`, string(data))
}

func TestEncodeCSV_QuotesFields(t *testing.T) {
	t.Parallel()

	report := &models.Report{TopEndpoint: &models.KeyCount{Key: "/search?q=a,b", Count: 2}}

	data, err := EncodeCSV(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"/search?q=a,b\",2\n")
}

func TestCSVReportWriter_Write(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	writer := NewCSVReportWriter(mockFileStorage, "log_analysis_results.csv")
	ctx := context.Background()

	mockFileStorage.EXPECT().
		Put(ctx, "log_analysis_results.csv", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedCSV, string(data))
			return &filestorages.PutResult{FileKey: key, Location: "/reports/" + key}, nil
		})

	result, err := writer.Write(ctx, newTestReport())
	require.NoError(t, err)
	assert.Equal(t, "/reports/log_analysis_results.csv", result.Location)
}

func TestCSVReportWriter_Write_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	writer := NewCSVReportWriter(mockFileStorage, "log_analysis_results.csv")

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("read-only file system"))

	result, err := writer.Write(context.Background(), newTestReport())
	assert.Nil(t, result)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codePersistFailed, svcErr.Code)
	assert.Contains(t, err.Error(), "read-only file system")
}

func TestCSVReportWriter_Write_ReplacesPreviousRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileStorage, err := filestorages.NewFileStorage(dir)
	require.NoError(t, err)
	writer := NewCSVReportWriter(fileStorage, "log_analysis_results.csv")
	ctx := context.Background()

	_, err = writer.Write(ctx, &models.Report{})
	require.NoError(t, err)
	_, err = writer.Write(ctx, newTestReport())
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "log_analysis_results.csv"))
	require.NoError(t, err)
	assert.Equal(t, expectedCSV, string(content))
}
