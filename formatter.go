package apiref

import "strings"

// FormatResolution formats one resolved reference as a tab-separated line.
// Found items show their kind and the first line of their summary.
func FormatResolution(ref Reference, res Resolution) string {
	if !res.Found() {
		return ref.String() + "\tunresolved (" + string(res.Reason) + ")"
	}

	parts := []string{ref.String(), string(res.Item.Kind)}
	if summary := firstLine(res.Item.Summary.Text()); summary != "" {
		parts = append(parts, summary)
	}
	return strings.Join(parts, "\t")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
