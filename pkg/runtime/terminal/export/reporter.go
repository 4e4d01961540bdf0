package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/catalog-atlas/pkg/models/domain"
)

// Reporter renders a catalog report to the console in formatted text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.CatalogReport) error {
	funcMap := template.FuncMap{
		"joinYears": func(years []int) string {
			parts := make([]string, 0, len(years))
			for _, y := range years {
				parts = append(parts, strconv.Itoa(y))
			}
			return strings.Join(parts, ", ")
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v)
		},
	}

	tmpl := `
Catalog: {{.Path}}

== Free vs paid ==
Total: {{.FreePaid.Total}} | Free: {{.FreePaid.FreeCount}} ({{percent .FreePaid.FreePercent}}) | Paid: {{.FreePaid.PaidCount}} ({{percent .FreePaid.PaidPercent}})

== Top release years ==
{{if .Years.TopYears}}Year(s) with most releases: {{joinYears .Years.TopYears}}
{{range .Years.Histogram}}  {{.Year}}: {{.Count}}
{{end}}{{else}}Unable to determine release years.
{{end}}
== OS compatibility ==
Most compatible: {{.MostCompatible.Name}} ({{.MostCompatible.Count}} titles; {{percent .MostCompatible.Percent}})
Windows: {{.Os.Windows.Count}} ({{percent .Os.Windows.Percent}}) | Mac: {{.Os.Mac.Count}} ({{percent .Os.Mac.Percent}}) | Linux: {{.Os.Linux.Count}} ({{percent .Os.Linux.Percent}})
Multi-OS: {{.MultiOs.MultiCount}} ({{percent .MultiOs.MultiPercent}}) | Single-OS: {{.MultiOs.SingleCount}} ({{percent .MultiOs.SinglePercent}}) | No OS: {{.MultiOs.ZeroCount}} ({{percent .MultiOs.ZeroPercent}})
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
