// SPDX-License-Identifier: Apache-2.0

// Package render is the presentation adapter: it turns plain view-model
// structs produced by the HTTP handlers into HTML pages.
//
// Handlers depend only on the [Renderer] interface, so the rendering engine
// is swappable and no core logic knows about templates.
package render

import (
	"io"
)

// Renderer renders the named view with the given data.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Flash is a one-time status message surviving exactly one redirect.
// Category is one of "success", "danger", "info".
type Flash struct {
	Category string
	Message  string
}

// Page is the envelope every view receives: the signed-in username (empty
// for anonymous pages), an optional flash message, and the page payload.
type Page struct {
	Title    string
	Username string
	Flash    *Flash
	Data     any
}
