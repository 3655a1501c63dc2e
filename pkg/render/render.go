// Package render provides output renderers for SARIF report patterns.
package render

import "github.com/dkoosis/sarifmd/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
