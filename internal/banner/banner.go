package banner

import (
	"fmt"
	"io"

	"github.com/biased-framework/go-service/internal/project"
	"github.com/fatih/color"
)

// Print writes the startup summary of the resolved project values.
func Print(w io.Writer, meta project.Metadata, port string) {
	title := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)

	title.Fprintf(w, "🚀 %s running on http://localhost:%s\n", meta.Name, port)
	label.Fprint(w, "📋 Problem: ")
	fmt.Fprintln(w, meta.Problem)
	label.Fprint(w, "👥 Personas: ")
	fmt.Fprintln(w, meta.Personas)
}
