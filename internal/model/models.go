package model

import "time"

type User struct {
	ID          string
	Email       string
	DisplayName string
}

type ProjectStatus int

const (
	StatusTodo ProjectStatus = iota
	StatusInProgress
	StatusCompleted
)

var statusNames = map[ProjectStatus]string{
	StatusTodo:       "TODO",
	StatusInProgress: "IN_PROGRESS",
	StatusCompleted:  "COMPLETED",
}

func (s ProjectStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

type Project struct {
	ID                  string
	Title               string
	Description         string
	IconName            string
	IconColor           string
	CreatedDate         time.Time
	DueDate             *time.Time
	IsCompleted         bool
	Status              ProjectStatus
	TasksCount          int
	CompletedTasksCount int
}

// ProgressPercentage returns completed/total in [0,1], 0 for a project without tasks.
func (p Project) ProgressPercentage() float64 {
	if p.TasksCount <= 0 {
		return 0
	}
	return float64(p.CompletedTasksCount) / float64(p.TasksCount)
}

type Task struct {
	ID          string
	Title       string
	Description string
	Assignee    *User
	DueDate     *time.Time
	IsCompleted bool
	ProjectID   string
	CreatedDate time.Time
	Comments    []Comment
}

type Comment struct {
	ID          string
	Text        string
	Author      User
	CreatedDate time.Time
}

// ProjectAnalytics is the summary shown on the analytics screen.
type ProjectAnalytics struct {
	ProjectID            string
	TaskCompletionRate   int // percent
	CompletionRateChange int // percent points over the last 30 days
	CompletedTasks       int
	InProgressTasks      int
	PendingTasks         int
	ProjectTimelineDays  int
	TimelineChange       int // negative means behind schedule
	WeeklyData           []WeekData
}

type WeekData struct {
	Week  int
	Value float64
}

type NotificationPreference string

const (
	NotifyAll      NotificationPreference = "all"
	NotifyMentions NotificationPreference = "mentions"
	NotifyNone     NotificationPreference = "none"
)

type NotificationSound string

const (
	SoundRingVibrate NotificationSound = "ring_vibrate"
	SoundVibrateOnly NotificationSound = "vibrate_only"
)

// NotificationSettings lives in memory for the session only.
type NotificationSettings struct {
	Preference NotificationPreference
	Sound      NotificationSound
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Preference: NotifyAll, Sound: SoundRingVibrate}
}
