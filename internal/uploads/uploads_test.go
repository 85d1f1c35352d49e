package uploads

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a *multipart.FileHeader the way echo receives one.
func multipartFile(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSave(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir(), "/uploads", 10)
	require.NoError(t, err)

	url, err := s.Save("owner-1", multipartFile(t, "file", "avatar.PNG", "png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/owner-1/"), "url %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lowercased: %q", url)

	// The stored file exists under the owner's directory.
	stored := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(s.Dir() + "/" + stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_RejectsUnsupportedType(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir(), "/uploads", 10)
	require.NoError(t, err)

	_, err = s.Save("owner-1", multipartFile(t, "file", "script.sh", "#!/bin/sh"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestSave_ClientFilenameNeverStored(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir(), "/uploads", 10)
	require.NoError(t, err)

	url, err := s.Save("owner-1", multipartFile(t, "file", "../../etc/passwd.png", "x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "passwd")
	assert.NotContains(t, url, "..")
}

func TestSave_RejectsTraversingOwnerID(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s, err := New(root+"/store", "/uploads", 10)
	require.NoError(t, err)

	for _, owner := range []string{"", "..", "../outside", `a\b`, "a/b"} {
		_, err := s.Save(owner, multipartFile(t, "file", "avatar.png", "x"))
		require.Error(t, err, "owner %q", owner)
		assert.Contains(t, err.Error(), "invalid owner id")
	}

	// Nothing was written beside the store root.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store", entries[0].Name())
}

func TestSaveAll_KeepsSucceededOnFailure(t *testing.T) {
	t.Parallel()

	s, err := New(t.TempDir(), "/uploads", 10)
	require.NoError(t, err)

	files := []*multipart.FileHeader{
		multipartFile(t, "file", "a.jpg", "aa"),
		multipartFile(t, "file", "b.exe", "bb"),
		multipartFile(t, "file", "c.webp", "cc"),
	}

	results := s.SaveAll("owner-1", files)
	require.Len(t, results, 3)

	assert.NotEmpty(t, results[0].URL)
	assert.Empty(t, results[0].Error)

	assert.Empty(t, results[1].URL)
	assert.NotEmpty(t, results[1].Error)

	// The failure in the middle does not stop or roll back the batch.
	assert.NotEmpty(t, results[2].URL)
}
