package i18n

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// templateCache keeps compiled message templates. Output is not HTML escaped:
// messages end up in terminals and notices, and Plain strips markup instead.
type templateCache struct {
	mu        sync.RWMutex
	templates map[string]*pongo2.Template
}

func newTemplateCache() *templateCache {
	return &templateCache{templates: make(map[string]*pongo2.Template)}
}

func (c *templateCache) render(msg string, params map[string]any) (string, error) {
	tmpl, err := c.compile(msg)
	if err != nil {
		return "", err
	}
	ctx := pongo2.Context{}
	for key, value := range params {
		ctx[key] = value
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("i18n: execute template %q: %w", msg, err)
	}
	return out, nil
}

func (c *templateCache) compile(msg string) (*pongo2.Template, error) {
	c.mu.RLock()
	tmpl, ok := c.templates[msg]
	c.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := pongo2.FromString("{% autoescape off %}" + msg + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("i18n: parse template %q: %w", msg, err)
	}

	c.mu.Lock()
	c.templates[msg] = tmpl
	c.mu.Unlock()
	return tmpl, nil
}
