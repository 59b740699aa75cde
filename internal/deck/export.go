package deck

import (
	"fmt"
	"strings"
)

// ExportDeckText lists the slides in page order, one per line.
func ExportDeckText(d Deck) string {
	lines := []string{}
	if d.Title != "" {
		lines = append(lines, "# "+d.Title)
	}
	for i, s := range d.Slides {
		photo := "photo"
		if !s.HasPhoto {
			photo = "no photo"
		}
		lines = append(lines, fmt.Sprintf("%03d %s %s (%s, %d awards)", i+1, s.StudentID, s.Name, photo, s.Awards))
	}
	return strings.Join(lines, "\n") + "\n"
}
