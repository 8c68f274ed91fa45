package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/memoriaviva-backend/pkg/ctxutil"
)

//go:generate moq -out identity_service_mock_test.go -pkg rest . identityService
//go:generate moq -out story_service_mock_test.go -pkg rest . storyService
//go:generate moq -out media_store_mock_test.go -pkg rest . mediaStore
//go:generate moq -out contribution_service_mock_test.go -pkg rest . contributionService
//go:generate moq -out dashboard_service_mock_test.go -pkg rest . dashboardService
//go:generate moq -out catalog_service_mock_test.go -pkg rest . catalogService
//go:generate moq -out veteran_stories_mock_test.go -pkg rest . veteranStories
//go:generate moq -out assistant_service_mock_test.go -pkg rest . assistantService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asRole attaches a caller identity to the request. An empty role leaves it anonymous.
func asRole(r *http.Request, id, role string) *http.Request {
	if role == "" {
		return r
	}
	return r.WithContext(ctxutil.WithIdentity(r.Context(), id, role))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type filePart struct {
	field, filename, contentType string
	data                         []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

// withPath routes a request through a one-pattern mux so PathValue works.
func withPath(pattern string, fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
