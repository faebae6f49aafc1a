package views

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "add_company.html", "add_student.html", "place_student.html", "view_records.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestExportURL(t *testing.T) {
	query := url.Values{"company": {"Acme"}, "type": {"csv"}}

	assert.Equal(t, "/export_placements?company=Acme&type=excel", string(ExportURL(query, "excel")))
	assert.Equal(t, []string{"csv"}, query["type"], "input is not modified")
}

func TestErrorPageEscapesMessage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "error.html", map[string]interface{}{
		"Title":   "Bad Request",
		"Status":  400,
		"Message": "<script>",
	}))
	assert.Contains(t, buf.String(), "400 Bad Request")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}
