package template

// Renderer executes a named envelope template. The page data carries the
// title, the rendered body, the stylesheet URL and the theme.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
}
