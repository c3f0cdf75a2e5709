package server

// reportTemplate renders the four-column extraction table. The Source
// Document cell is an active hyperlink using the record value as the target.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Extraction Results</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.5rem 0.75rem; text-align: left; vertical-align: top; }
th { background: #f2f2f2; }
td.summary { white-space: pre-line; }
p.notice { color: #8a6d3b; background: #fcf8e3; padding: 0.75rem; }
small.meta { color: #777; }
</style>
</head>
<body>
<h1>Extraction Results</h1>
{{if .Report}}
<small class="meta">Run {{.Report.RunID}} &middot; {{.Report.GeneratedAt.Format "2006-01-02 15:04:05 UTC"}}</small>
<table>
<tr><th>Source Document</th><th>Created Date</th><th>Posted Date</th><th>Summary</th></tr>
{{range .Report.Records}}
<tr>
<td><a href="{{.SourceDocument}}">{{.SourceDocument}}</a></td>
<td>{{.CreatedDate}}</td>
<td>{{.PostedDate}}</td>
<td class="summary">{{.Summary}}</td>
</tr>
{{end}}
</table>
{{else}}
<p class="notice">Could not extract any data from the uploaded files.</p>
{{end}}
</body>
</html>
`
