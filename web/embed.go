package web

import "embed"

// TemplatesFS embeds the dashboard page templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
