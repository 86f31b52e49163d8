package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/handiism/met-downloader/internal/config"
	"github.com/handiism/met-downloader/internal/console"
	"github.com/handiism/met-downloader/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no query", []string{}, "Failed to validate arguments"},
		{"count too large", []string{"-n", "101", "cats"}, "Failed to validate arguments"},
		{"count zero", []string{"--count", "0", "cats"}, "Failed to validate arguments"},
		{"two queries", []string{"cats", "dogs"}, "Failed to validate arguments"},
		{"unknown flag", []string{"--bogus", "cats"}, "Failed to validate arguments"},
		{"negative size", []string{"--max-size", "-5", "cats"}, "Failed to validate arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if !bytes.Contains(stderr.Bytes(), []byte(tt.wantErr)) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Errorf("run(--help) = %d, want 0", code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("-random")) {
		t.Errorf("usage should list flags, got %q", stderr.String())
	}
}

// collectionServer serves search results for "cats" and the given records.
// Records are keyed by id; an image of true gives the record a primary
// image served by the same server. Ids missing from records answer 500.
func collectionServer(t *testing.T, ids []int, records map[int]bool) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	r := mux.NewRouter()

	r.HandleFunc("/search", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("q") != "cats" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"total": len(ids), "objectIDs": ids})
	})

	r.HandleFunc("/objects/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(mux.Vars(req)["id"])
		hasImage, ok := records[id]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		image := ""
		if hasImage {
			image = fmt.Sprintf("%s/images/%d.jpg", srv.URL, id)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"objectID":     id,
			"title":        fmt.Sprintf("Cat %d", id),
			"primaryImage": image,
		})
	})

	r.HandleFunc("/images/{name}", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "image bytes of "+mux.Vars(req)["name"])
	})

	srv = httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeSettings(t *testing.T, apiBaseURL string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	data, err := json.Marshal(map[string]any{"api_base_url": apiBaseURL})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		ids        []int
		records    map[int]bool
		extraArgs  []string
		wantCode   int
		wantStdout []string
		wantStderr []string
		wantFiles  []string
	}{
		{
			name:       "first candidate accepted",
			ids:        []int{1, 2, 3},
			records:    map[int]bool{1: true, 2: true, 3: true},
			wantCode:   0,
			wantStdout: []string{"Downloaded artwork id 1", "Skipping report generation", "Downloaded 1/1 artworks"},
			wantFiles:  []string{"1.jpg"},
		},
		{
			name:     "every slot abandoned",
			ids:      []int{1, 2, 3},
			records:  map[int]bool{1: false, 2: false, 3: false},
			wantCode: 0,
			wantStdout: []string{
				"Skipping artwork id 1 because it is missing an image.",
				"Skipping artwork id 3 because it is missing an image.",
				"Skipping report generation",
				"No artworks downloaded (1 requested)",
			},
		},
		{
			name:       "detail fetch fails",
			ids:        []int{1, 2},
			records:    map[int]bool{1: true},
			extraArgs:  []string{"-n", "2"},
			wantCode:   1,
			wantStdout: []string{"Skipping artwork id 1 because it has already been downloaded."},
			wantStderr: []string{"Error:", "getting artwork 2"},
			wantFiles:  []string{"1.jpg"},
		},
		{
			name:       "report written",
			ids:        []int{1, 2},
			records:    map[int]bool{1: true, 2: true},
			extraArgs:  []string{"-e", "--count", "2"},
			wantCode:   0,
			wantStdout: []string{"Report written to", "Downloaded 2/2 artworks"},
			wantFiles:  []string{"1.jpg", "2.jpg", "report.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := collectionServer(t, tt.ids, tt.records)
			outDir := t.TempDir()

			args := append([]string{"-c", writeSettings(t, srv.URL), "-o", outDir, "cats"}, tt.extraArgs...)

			var stdout, stderr bytes.Buffer
			code := run(args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())
			for _, want := range tt.wantStdout {
				assert.Contains(t, stdout.String(), want)
			}
			for _, want := range tt.wantStderr {
				assert.Contains(t, stderr.String(), want)
			}
			for _, name := range tt.wantFiles {
				assert.FileExists(t, filepath.Join(outDir, name))
			}
			if tt.wantCode != 0 {
				assert.NoFileExists(t, filepath.Join(outDir, "report.json"))
			}
		})
	}
}

func TestRun_ReportContents(t *testing.T) {
	srv := collectionServer(t, []int{4}, map[int]bool{4: true})
	outDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--report", "-c", writeSettings(t, srv.URL), "--outdir", outDir, "cats"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(outDir, "report.json"))
	require.NoError(t, err)

	var got report.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "cats", got.Query)
	assert.Equal(t, 1, got.Requested)
	assert.Equal(t, 1, got.Downloaded)
	require.Len(t, got.Artworks, 1)
	assert.Equal(t, filepath.Join(outDir, "4.jpg"), got.Artworks[0].File)
}

func TestUseSettingsFile(t *testing.T) {
	t.Run("missing file is created", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "met.json")
		settings := config.DefaultSettings()
		settings.UserAgent = "TestAgent"

		var stdout, stderr bytes.Buffer
		useSettingsFile(console.NewPrinter(&stdout, &stderr, false), path, settings)

		assert.Contains(t, stdout.String(), "Wrote default settings to "+path)
		loaded, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "TestAgent", loaded.UserAgent)
	})

	t.Run("existing file is reported in verbose mode", func(t *testing.T) {
		path := writeSettings(t, "http://example.invalid")
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		var stdout, stderr bytes.Buffer
		useSettingsFile(console.NewPrinter(&stdout, &stderr, true), path, config.DefaultSettings())

		assert.Contains(t, stdout.String(), "Using settings from "+path)
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after, "existing settings must not be overwritten")
	})

	t.Run("no path", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		useSettingsFile(console.NewPrinter(&stdout, &stderr, true), "", config.DefaultSettings())
		assert.Empty(t, stdout.String())
	})
}
