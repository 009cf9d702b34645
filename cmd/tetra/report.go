package main

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/tetra/bot"
)

type Report struct {
	Result      bot.Result
	Interrupted bool
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Bot Training Report
- **Run:** {{.Result.ID}}{{if .Interrupted}} (interrupted){{end}}
- **Elapsed:** {{ms .Result.Elapsed}}

## Configuration
- **Population:** {{.Result.Config.Population}}
- **Generations:** {{.Result.Config.Generations}}
- **Games per Individual:** {{.Result.Config.Games}}
- **Piece Budget:** {{.Result.Config.PieceBudget}}
- **Workers:** {{.Result.Config.Workers}}
- **Search:** {{if .Result.Config.FullSearch}}full{{else}}fast{{end}}
- **Seed:** {{.Result.Config.Seed}}

## Best Individual
- **Fitness:** {{f2 .Result.Best.Fitness}}
- **Lines / Game:** {{f2 .Result.Best.Lines}}
- **Pieces / Game:** {{f2 .Result.Best.Pieces}}
- **Weights:**
  - height:    {{f4 .Result.Best.Weights.Height}}
  - lines:     {{f4 .Result.Best.Weights.Lines}}
  - holes:     {{f4 .Result.Best.Weights.Holes}}
  - bumpiness: {{f4 .Result.Best.Weights.Bumpiness}}
  - well:      {{f4 .Result.Best.Weights.Well}}

## Generations
| Gen | Best | Mean | Time | Progress
|-----|------|------|------|---------
{{range .Result.History}}| {{.Index}} | {{f2 .Best.Fitness}} | {{f2 .Mean}} | {{ms .Elapsed}} | {{bar .Best.Fitness $.Result.Best.Fitness}}
{{end}}`

	fm := template.FuncMap{
		"f2": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"f4": func(v float64) string {
			return fmt.Sprintf("%+.4f", v)
		},
		"ms": func(d time.Duration) string {
			return d.Round(time.Millisecond).String()
		},
		"bar": func(v, best float64) string {
			if best <= 0 || v <= 0 {
				return ""
			}
			return strings.Repeat("#", int(20*v/best))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
