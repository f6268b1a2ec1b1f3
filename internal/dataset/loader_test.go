package dataset

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Description,Real GDP of England at market prices,Population (GB+NI)\n" +
	"1300,1000.5,4.5\n" +
	"1301,\"1,050.2\",4.6\n" +
	"1302,n/a,4.7\n"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "millennium.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV_FromFile(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)

	rows, err := LoadCSV(context.Background(), path, slog.Default())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1300", rows[0].Year)
	assert.Equal(t, "1000.5", rows[0].Values["Real GDP of England at market prices"])
	assert.Equal(t, "4.5", rows[0].Values["Population (GB+NI)"])

	// Quoted thousands separators survive to the parsing layer.
	assert.Equal(t, "1,050.2", rows[1].Values["Real GDP of England at market prices"])
	assert.Equal(t, "n/a", rows[2].Values["Real GDP of England at market prices"])
}

func TestLoadCSV_StripsBOM(t *testing.T) {
	path := writeTempCSV(t, "\xEF\xBB\xBF"+sampleCSV)

	rows, err := LoadCSV(context.Background(), path, slog.Default())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0].Values, "Real GDP of England at market prices")
}

func TestLoadCSV_ShortRowsPadded(t *testing.T) {
	path := writeTempCSV(t, "Description,A,B\n1300,1\n")

	rows, err := LoadCSV(context.Background(), path, slog.Default())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Values["A"])
	assert.Equal(t, "", rows[0].Values["B"])
}

func TestLoadCSV_FromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	rows, err := LoadCSV(context.Background(), srv.URL, slog.Default())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestLoadCSV_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := LoadCSV(context.Background(), srv.URL, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dataset")
}

func TestLoadCSV_NoDataRows(t *testing.T) {
	path := writeTempCSV(t, "Description,A,B\n")

	_, err := LoadCSV(context.Background(), path, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}
