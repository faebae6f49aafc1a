package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["resume"][0]
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"My Resume.pdf":        "My_Resume.pdf",
		"../../etc/passwd.pdf": "etc_passwd.pdf",
		`C:\docs\cv.pdf`:       "C_docs_cv.pdf",
		"Résumé.pdf":           "Resume.pdf",
		"a$b%c.pdf":            "abc.pdf",
		"__hidden.pdf":         "hidden.pdf",
		"...":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

func TestSaveResume(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := ls.SaveResume(uploadedFile(t, "Jane Doe.pdf", []byte("%PDF-1.4 first")))
	require.NoError(t, err)
	assert.Equal(t, "Jane_Doe.pdf", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 first", string(data))

	t.Run("same name overwrites", func(t *testing.T) {
		name, err := ls.SaveResume(uploadedFile(t, "Jane Doe.pdf", []byte("%PDF-1.4 second")))
		require.NoError(t, err)

		data, err := os.ReadFile(ls.GetFullPath(name))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 second", string(data))
	})

	t.Run("non pdf is skipped", func(t *testing.T) {
		name, err := ls.SaveResume(uploadedFile(t, "resume.docx", []byte("doc")))
		require.NoError(t, err)
		assert.Empty(t, name)

		name, err = ls.SaveResume(uploadedFile(t, "RESUME.PDF", []byte("upper")))
		require.NoError(t, err)
		assert.Empty(t, name)

		_, statErr := os.Stat(filepath.Join(dir, "resume.docx"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing upload", func(t *testing.T) {
		name, err := ls.SaveResume(nil)
		require.NoError(t, err)
		assert.Empty(t, name)
	})
}

func TestGetFullPath(t *testing.T) {
	ls := &LocalStorage{basePath: "/srv/uploads"}

	assert.Equal(t, filepath.Join("/srv/uploads", "cv.pdf"), ls.GetFullPath("cv.pdf"))
	assert.Equal(t, filepath.Join("/srv/uploads", "passwd"), ls.GetFullPath("../../etc/passwd"))
	assert.Equal(t, "", ls.GetFullPath(".."))
}
