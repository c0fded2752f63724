package export

import (
	"time"

	"github.com/kartoza/kartoza-clip-studio/internal/models"
	"github.com/kartoza/kartoza-clip-studio/internal/renderapi"
)

// tracker is the synchronous core of the orchestrator's state machine.
// It applies poll responses keyed by a monotonic sequence number so a
// stale response reordered by the network can never regress the job, and
// no response of any kind can move a job out of a terminal state.
type tracker struct {
	state    State
	job      models.ExportJob
	seq      uint64
	applied  uint64
	failures int
	maxFails int
	deadline time.Time
}

func newTracker(opts Options) *tracker {
	return &tracker{
		state:    StateIdle,
		maxFails: opts.MaxPollFailures,
		deadline: time.Now().Add(opts.MaxWait),
	}
}

// accept records the service's acceptance of the submission.
func (t *tracker) accept(jobID string) {
	t.job = models.ExportJob{JobID: jobID, Status: models.JobPending}
	t.state = StatePolling
}

// nextSeq issues the sequence number for the next poll request.
func (t *tracker) nextSeq() uint64 {
	t.seq++
	return t.seq
}

// apply folds one poll response into the job. It returns false when the
// response is discarded: older than the last applied one, or arriving
// after the job already reached a terminal state.
func (t *tracker) apply(seq uint64, resp *renderapi.JobStatusResponse) bool {
	if seq <= t.applied {
		return false
	}
	if t.state == StateCompleted || t.state == StateFailed {
		return false
	}
	t.applied = seq
	t.failures = 0

	// Progress is monotonic even if the server reports a lower value.
	if resp.Progress > t.job.Progress {
		t.job.Progress = resp.Progress
	}

	switch models.JobStatus(resp.Status) {
	case models.JobCompleted:
		t.state = StateCompleted
		t.job.Status = models.JobCompleted
		t.job.Progress = 100
		t.job.DownloadURL = resp.DownloadURL
	case models.JobFailed:
		t.state = StateFailed
		t.job.Status = models.JobFailed
		t.job.Error = resp.Error
		if t.job.Error == "" {
			t.job.Error = "export failed"
		}
	case models.JobProcessing:
		t.job.Status = models.JobProcessing
	default:
		t.job.Status = models.JobPending
	}
	return true
}

// transportFailure counts one failed poll and reports whether the
// bounded retry budget is exhausted, in which case the job is failed.
func (t *tracker) transportFailure() bool {
	t.failures++
	if t.failures < t.maxFails {
		return false
	}
	t.fail("lost contact with the render service")
	return true
}

// timeout forces the job to failed after the maximum wait elapsed.
func (t *tracker) timeout() {
	t.fail(ErrTimeout.Error())
}

func (t *tracker) fail(msg string) {
	t.state = StateFailed
	t.job.Status = models.JobFailed
	t.job.Error = msg
}

func (t *tracker) terminal() bool {
	return t.state == StateCompleted || t.state == StateFailed
}

func (t *tracker) update() Update {
	return Update{State: t.state, Job: t.job}
}
