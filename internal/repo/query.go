package repo

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sadopc/taskflow/internal/model"
)

type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

var filterNames = []string{"all", "active", "completed"}

func (f Filter) String() string {
	if f >= 0 && int(f) < len(filterNames) {
		return filterNames[f]
	}
	return "unknown"
}

type Sort int

const (
	SortDate Sort = iota
	SortName
	SortProgress
)

var sortNames = []string{"date", "name", "progress"}

func (s Sort) String() string {
	if s >= 0 && int(s) < len(sortNames) {
		return sortNames[s]
	}
	return "unknown"
}

// ParseFilter and ParseSort accept the names returned by String.
func ParseFilter(s string) (Filter, bool) {
	i := slices.Index(filterNames, strings.ToLower(s))
	return Filter(max(i, 0)), i >= 0
}

func ParseSort(s string) (Sort, bool) {
	i := slices.Index(sortNames, strings.ToLower(s))
	return Sort(max(i, 0)), i >= 0
}

// Next cycles through the options, for single-key toggles in the TUI.
func (f Filter) Next() Filter { return (f + 1) % Filter(len(filterNames)) }
func (s Sort) Next() Sort     { return (s + 1) % Sort(len(sortNames)) }

type Query struct {
	Filter Filter
	Sort   Sort
	Search string
}

// Apply returns the projects matching q in the requested order. The input is
// not modified; equal keys keep their input order.
func Apply(projects []model.Project, q Query) []model.Project {
	fold := cases.Fold()
	needle := fold.String(q.Search)

	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if needle != "" &&
			!strings.Contains(fold.String(p.Title), needle) &&
			!strings.Contains(fold.String(p.Description), needle) {
			continue
		}
		switch q.Filter {
		case FilterActive:
			if p.IsCompleted {
				continue
			}
		case FilterCompleted:
			if !p.IsCompleted {
				continue
			}
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortName:
		slices.SortStableFunc(out, func(a, b model.Project) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortProgress:
		slices.SortStableFunc(out, func(a, b model.Project) int {
			pa, pb := a.ProgressPercentage(), b.ProgressPercentage()
			switch {
			case pa > pb:
				return -1
			case pa < pb:
				return 1
			}
			return 0
		})
	default:
		slices.SortStableFunc(out, func(a, b model.Project) int {
			return b.CreatedDate.Compare(a.CreatedDate)
		})
	}
	return out
}
