package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var profile = termenv.EnvColorProfile()

func styled(s, hex string) termenv.Style {
	return termenv.String(s).Foreground(profile.Color(hex))
}

func bold(style termenv.Style) termenv.Style {
	if profile == termenv.Ascii {
		return style
	}
	return style.Bold()
}

func success(s string) termenv.Style {
	return bold(styled(s, "#34d399"))
}

func failure(s string) termenv.Style {
	return bold(styled(s, "#fb7185"))
}

func highlight(s string) termenv.Style {
	return styled(s, "#818cf8")
}

func faint(s string) termenv.Style {
	if profile == termenv.Ascii {
		return termenv.String(s)
	}
	return termenv.String(s).Faint()
}

// Progress output goes to stderr, only when someone is watching it
func interactive() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
