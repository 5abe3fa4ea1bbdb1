package web

import (
	"bytes"
	"fmt"
)

// renderFragment executes a named template into a string, for payloads
// that do not go through gin's renderer.
func (s *Server) renderFragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
