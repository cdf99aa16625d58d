// Package assets provides the embedded default stylesheets for the
// generated HTML document: the base body styles plus the header and footer
// blocks. User configuration can replace any of them wholesale.
package assets

import _ "embed"

//go:embed styles/base.css
var baseCSS string

//go:embed styles/header.css
var headerCSS string

//go:embed styles/footer.css
var footerCSS string

// BaseCSS returns the default body stylesheet.
func BaseCSS() string { return baseCSS }

// HeaderCSS returns the default document header stylesheet.
func HeaderCSS() string { return headerCSS }

// FooterCSS returns the default document footer stylesheet.
func FooterCSS() string { return footerCSS }
