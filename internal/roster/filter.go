package roster

import "strings"

type FilterOptions struct {
	AwardsOnly    bool
	WithPhotoOnly bool
	Statuses      []string
	FreeWords     string
}

func containsAny(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// Filter returns the students matching opt, in their original order.
func Filter(students []Student, opt FilterOptions) []Student {
	out := []Student{}
	for _, s := range students {
		if opt.AwardsOnly && !s.HasAwards() {
			continue
		}
		if opt.WithPhotoOnly && !s.HasPhoto() {
			continue
		}
		if len(opt.Statuses) > 0 {
			matched := false
			for _, st := range opt.Statuses {
				if s.Status == st {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(s.FullName), k) &&
					!strings.Contains(strings.ToLower(s.DisplayName()), k) &&
					!strings.Contains(strings.ToLower(s.StudentID), k) &&
					!containsAny(s.Awards, k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
