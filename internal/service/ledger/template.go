package ledger

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
)

// reportTemplate is the single print layout; the tables carry all
// template-specific structure, so one HTML shell fits every report type.
var reportTemplate = template.Must(template.New("ledger").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Times New Roman", serif; margin: 24px; }
h1 { font-size: 18px; text-align: center; margin-bottom: 4px; }
p.period { text-align: center; margin-top: 0; }
table { border-collapse: collapse; width: 100%; margin-bottom: 24px; }
caption { font-weight: bold; text-align: left; padding: 6px 0; }
th, td { border: 1px solid #333; padding: 4px 6px; font-size: 12px; }
th { background: #eee; }
td.amount { text-align: right; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="period">Pay Period: {{.PeriodStart.Format "January 2, 2006"}} to {{.PeriodEnd.Format "January 2, 2006"}}</p>
{{- range .Tables}}
<table>
<caption>{{.Caption}}</caption>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
</body>
</html>
`))

func renderHTML(report ledger.TabularReport) (string, error) {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, report); err != nil {
		return "", fmt.Errorf("render ledger html: %w", err)
	}
	return b.String(), nil
}
