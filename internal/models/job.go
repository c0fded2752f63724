package models

// JobStatus is the render service's view of an export job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// IsTerminal reports whether the status ends the job's lifecycle.
func (s JobStatus) IsTerminal() bool {
	return s == JobCompleted || s == JobFailed
}

// ExportJob tracks one server-side render task from submission to a
// terminal state. DownloadURL is set only when completed; Error only when
// failed.
type ExportJob struct {
	JobID       string    `json:"job_id"`
	Status      JobStatus `json:"status"`
	Progress    float64   `json:"progress"`
	DownloadURL string    `json:"download_url,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// ExportSettings selects the target platform and encoding options for an
// export job.
type ExportSettings struct {
	Platform   string `json:"platform"`
	Resolution string `json:"resolution"`
	Quality    string `json:"quality"`
}

// DefaultExportSettings returns the editor's starting export options.
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		Platform:   "original",
		Resolution: "1080p",
		Quality:    "High",
	}
}

// Resolutions lists the selectable output resolutions.
func Resolutions() []string {
	return []string{"480p", "720p", "1080p"}
}

// Qualities lists the selectable encoding qualities.
func Qualities() []string {
	return []string{"High", "Medium", "Low"}
}
