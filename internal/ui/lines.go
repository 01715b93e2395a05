package ui

import "isles/internal/core"

// KeyHelp lists the viewer key bindings.
var KeyHelp = []string{
	"KEYS",
	"  R: regenerate  S: random seed  N: next seed",
	"  Space: pause rivers  H: toggle panel  Q: quit",
}

// Lines returns the panel text for p followed by the key help.
func Lines(p core.ParameterProvider) []string {
	var out []string
	if p != nil {
		out = append(out, p.Parameters().Lines()...)
	}
	return append(out, KeyHelp...)
}
