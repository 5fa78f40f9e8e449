package api

import (
	"sort"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/report"
)

// DurationBucket is one labelled slice of a duration report.
type DurationBucket struct {
	Label    string
	Duration time.Duration
}

// DurationReport summarizes tracked time inside a window, grouped by
// project and by task type. Only the portion of each log overlapping
// the window counts, so a log straddling the window boundary is split.
type DurationReport struct {
	Window    report.Window
	Total     time.Duration
	ByProject []DurationBucket
	ByType    []DurationBucket
}

// DayReport reports tracked time for the day containing date. An
// empty date means today.
func (a *API) DayReport(date string) (DurationReport, error) {
	ref, err := a.parseDate(date)
	if err != nil {
		return DurationReport{}, err
	}
	return a.buildReport(report.DayWindow(ref)), nil
}

// WeekReport reports tracked time for the Monday-to-Sunday week
// containing date.
func (a *API) WeekReport(date string) (DurationReport, error) {
	ref, err := a.parseDate(date)
	if err != nil {
		return DurationReport{}, err
	}
	return a.buildReport(report.WeekWindow(ref)), nil
}

// MonthReport reports tracked time for the calendar month containing
// date.
func (a *API) MonthReport(date string) (DurationReport, error) {
	ref, err := a.parseDate(date)
	if err != nil {
		return DurationReport{}, err
	}
	return a.buildReport(report.MonthWindow(ref)), nil
}

// RangeReport reports tracked time between two dates, inclusive.
func (a *API) RangeReport(startDate, endDate string) (DurationReport, error) {
	start, err := report.ParseLocalDate(startDate)
	if err != nil {
		return DurationReport{}, err
	}
	end, err := report.ParseLocalDate(endDate)
	if err != nil {
		return DurationReport{}, err
	}
	if end.Before(start) {
		return DurationReport{}, errors.NewValidationError("end date must not be before start date", nil)
	}
	return a.buildReport(report.RangeWindow(start, end)), nil
}

func (a *API) buildReport(w report.Window) DurationReport {
	now := a.store.Now()
	tasks := a.store.Tasks()

	byProject := report.TotalDurationByProject(tasks, w, now)
	labelled := make(map[string]time.Duration, len(byProject))
	for projectID, d := range byProject {
		// deleted projects collapse into the unknown-project bucket
		labelled[a.store.ProjectName(projectID)] += d
	}

	result := DurationReport{
		Window:    w,
		ByProject: sortBuckets(labelled),
		ByType:    sortBuckets(report.TotalDurationByType(tasks, w, now)),
	}
	for _, bucket := range result.ByProject {
		result.Total += bucket.Duration
	}
	return result
}

func sortBuckets(byKey map[string]time.Duration) []DurationBucket {
	buckets := make([]DurationBucket, 0, len(byKey))
	for label, d := range byKey {
		buckets = append(buckets, DurationBucket{Label: label, Duration: d})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Duration != buckets[j].Duration {
			return buckets[i].Duration > buckets[j].Duration
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

// CompletedGroup is one task-type section of the monthly report.
type CompletedGroup struct {
	Type  string
	Total time.Duration
	Tasks []TaskView
}

// MonthlyCompleted lists the tasks completed in the month containing
// date, grouped by type. Tasks that were never explicitly finished
// fall back to their last log's end as completion time; tasks with
// neither are excluded.
func (a *API) MonthlyCompleted(date string) ([]CompletedGroup, error) {
	ref, err := a.parseDate(date)
	if err != nil {
		return nil, err
	}

	groups := report.MonthlyCompleted(a.store.Tasks(), ref, a.store.Now())
	views := make([]CompletedGroup, 0, len(groups))
	for _, group := range groups {
		view := CompletedGroup{Type: group.Type, Total: group.Total}
		for _, task := range group.Tasks {
			view.Tasks = append(view.Tasks, a.view(task))
		}
		views = append(views, view)
	}
	return views, nil
}

// StandupView groups tasks for a daily standup.
type StandupView struct {
	DidYesterday []TaskView
	DidToday     []TaskView
	WillDoToday  []TaskView
}

// Standup classifies tasks for the standup of the day containing
// date. A task can appear in more than one section.
func (a *API) Standup(date string) (StandupView, error) {
	ref, err := a.parseDate(date)
	if err != nil {
		return StandupView{}, err
	}

	standup := report.BuildStandup(a.store.Tasks(), ref)
	return StandupView{
		DidYesterday: a.views(standup.DidYesterday),
		DidToday:     a.views(standup.DidToday),
		WillDoToday:  a.views(standup.WillDoToday),
	}, nil
}

func (a *API) views(tasks []domain.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, a.view(task))
	}
	return views
}

func (a *API) parseDate(date string) (time.Time, error) {
	if date == "" {
		return a.store.Now(), nil
	}
	return report.ParseLocalDate(date)
}
