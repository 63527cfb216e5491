package server

import "html/template"

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Video and Audio Summarizer</title>
  <style>
    body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
    .summary { white-space: pre-wrap; background: #f5f5f5; padding: 1rem; border-radius: 4px; }
    .error { color: #b00020; }
  </style>
</head>
<body>
  <h1>Video and Audio Summarizer</h1>
  <form method="post" action="/summarize" enctype="multipart/form-data">
    <label for="video">Upload your video file</label>
    <input id="video" type="file" name="video" accept="{{.Accept}}" required>
    <button type="submit">Generate Summary</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  {{if .Summary}}<h2>Summary:</h2><div class="summary">{{.Summary}}</div>{{end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("index").Parse(indexPage))

type pageData struct {
	Accept  string
	Summary string
	Error   string
}
