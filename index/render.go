package index

import (
	"html/template"
	"net/url"
	"strings"
)

var pageTemplate = template.Must(template.New("index").Parse(
	`<html><head></head><body>
<table>
<tr><th></th><th>Name</th><th>Last modified</th><th>Size</th></tr>
<tr><th colspan='4'><hr/></th></tr>
<tr><td>&lt;</td><td><a href='../index.html'>Parent Directory</a></td><td>&nbsp;</td><td>&nbsp;</td></tr>
{{range .}}<tr><td>{{.Marker}}</td><td><a href='{{.Link}}'>{{.Name}}</a></td><td>{{.Modified}}</td><td>{{.Size}}</td></tr>
{{end}}</table>
</body></html>
`))

// row is the template view of an Entry. Name is escaped by the template.
// Link is percent-encoded by href; the timestamp and size are generated here
// and inserted as is so that "+00:00" is not turned into "&#43;00:00".
type row struct {
	Marker   string
	Name     string
	Link     template.URL
	Modified template.HTML
	Size     template.HTML
}

// Render returns the index page for entries, one table row per entry in
// the given order after the fixed Parent Directory row.
func Render(entries []Entry) (string, error) {
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{
			Marker:   e.Marker(),
			Name:     e.Name,
			Link:     href(e.Link), //nolint:gosec // every segment is path-escaped
			Modified: template.HTML(e.ModifiedText()), //nolint:gosec // fixed layout of digits and separators
			Size:     template.HTML(e.SizeText()),     //nolint:gosec // FormatSize output
		})
	}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// href percent-encodes each "/"-separated segment of link. A leading
// segment holding a colon gets a "./" prefix so that it is not read as a
// URL scheme.
func href(link string) template.URL {
	segments := strings.Split(link, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	escaped := strings.Join(segments, "/")
	if strings.Contains(segments[0], ":") {
		escaped = "./" + escaped
	}
	return template.URL(escaped)
}
