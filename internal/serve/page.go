package serve

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>wordviz{{if .URL}} - {{.URL}}{{end}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
form { display: flex; gap: 0.75rem; align-items: end; flex-wrap: wrap; }
label { display: flex; flex-direction: column; font-size: 0.85rem; }
input[type=url] { width: 32rem; }
.error { color: #b00020; margin-top: 1rem; }
.summary { color: #555; }
iframe { width: 100%; border: 0; margin-top: 1rem; }
pre { background: #f6f6f6; padding: 1rem; }
</style>
</head>
<body>
<h1>wordviz</h1>
<form method="get" action="/">
  <label>Page URL
    <input type="url" name="url" value="{{.URL}}" placeholder="https://example.com" required>
  </label>
  <label>Minimum frequency
    <input type="number" name="min_freq" value="{{.MinFreq}}">
  </label>
  <label>Chart
    <select name="chart">
    {{- range .Kinds}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{- end}}
    </select>
  </label>
  <button type="submit">Analyze</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{- if .Result}}
<p class="summary">{{.Summary}}</p>
{{- if .ChartHTML}}
<iframe title="chart" height="{{.IframeHeight}}" srcdoc="{{.ChartHTML}}"></iframe>
{{- end}}
<h2>Top words</h2>
{{- if .Listing}}
<pre>{{.Listing}}</pre>
{{- else}}
<p>No words met the minimum frequency.</p>
{{- end}}
{{- end}}
</body>
</html>
`))

type kindOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	URL     string
	MinFreq string
	Kinds   []kindOption
	Error   string

	Result  bool
	Summary string
	Listing string
	// ChartHTML is a plain string so the template escapes it into the
	// srcdoc attribute.
	ChartHTML    string
	IframeHeight int
}
