package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for terminal rendering of inspection output.
var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	asciiStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

// FormatBytes formats bytes to human readable string
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatBytesInt formats bytes (int) to human readable string
func FormatBytesInt(bytes int) string {
	return FormatBytes(int64(bytes))
}

// RenderField renders a labeled value for terminal display.
func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// hexDumpWidth is the number of bytes rendered per hex dump row.
const hexDumpWidth = 16

// RenderHexDump renders data as a classic hex dump: an offset column,
// sixteen hex bytes per row, and an ASCII gutter. maxRows bounds the
// output; pass 0 for no limit. Rows beyond the bound are summarized.
func RenderHexDump(data []byte, maxRows int) string {
	var sb strings.Builder

	rows := (len(data) + hexDumpWidth - 1) / hexDumpWidth
	shown := rows
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}

	for row := 0; row < shown; row++ {
		start := row * hexDumpWidth
		end := start + hexDumpWidth
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]

		sb.WriteString(offsetStyle.Render(fmt.Sprintf("%08x", start)))
		sb.WriteString("  ")

		for i := 0; i < hexDumpWidth; i++ {
			if i < len(chunk) {
				fmt.Fprintf(&sb, "%02x ", chunk[i])
			} else {
				sb.WriteString("   ")
			}
			if i == hexDumpWidth/2-1 {
				sb.WriteByte(' ')
			}
		}

		sb.WriteByte(' ')
		sb.WriteString(asciiStyle.Render(asciiGutter(chunk)))
		sb.WriteByte('\n')
	}

	if shown < rows {
		fmt.Fprintf(&sb, "... (%s more)\n", FormatBytesInt(len(data)-shown*hexDumpWidth))
	}
	return sb.String()
}

// asciiGutter maps a chunk to its printable-ASCII representation,
// substituting '.' for non-printable bytes.
func asciiGutter(chunk []byte) string {
	out := make([]byte, len(chunk))
	for i, c := range chunk {
		if c >= 0x20 && c < 0x7F {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
