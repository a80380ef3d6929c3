// ABOUTME: Export formatting for stored readings
// ABOUTME: Renders readings as a markdown table or a JSON array
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harper/bloodpressure/internal/store"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Write renders readings to w in the requested format. Readings are
// written in the order given; callers decide the ordering.
func Write(w io.Writer, format string, readings []store.Reading) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(readings, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, formatMarkdown(readings))
		return err
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func formatMarkdown(readings []store.Reading) string {
	var sb strings.Builder

	sb.WriteString("| Date | BP | Pulse |\n")
	sb.WriteString("|------|----|-------|\n")
	for _, r := range readings {
		local := r.Timestamp.Local()
		sb.WriteString(fmt.Sprintf("| %s | %d/%d | %d |\n",
			local.Format("2006-01-02 03:04pm"), r.Systolic, r.Diastolic, r.Pulse))
	}

	return sb.String()
}
