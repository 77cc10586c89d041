package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	recordsResumeTotal convCounter
	recordsEmailTotal  convCounter
	recordsUploadTotal convCounter
	recordsOtherTotal  convCounter

	aiRequestsTotal     convCounter
	aiFailedTotal       convCounter
	jobSearchTotal      convCounter
	jobSearchFailsTotal convCounter

	aiDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

type convCounter struct{ v atomic.Uint64 }

// IncRecordAppended increments the appended-records counter for a mode tag.
func IncRecordAppended(mode string) {
	switch mode {
	case "RESUME":
		recordsResumeTotal.v.Add(1)
	case "EMAIL":
		recordsEmailTotal.v.Add(1)
	case "UPLOAD":
		recordsUploadTotal.v.Add(1)
	default:
		recordsOtherTotal.v.Add(1)
	}
}

// IncAIRequest increments the AI completion request counter.
func IncAIRequest() {
	aiRequestsTotal.v.Add(1)
}

// IncAIFailed increments the AI completion failure counter.
func IncAIFailed() {
	aiFailedTotal.v.Add(1)
}

// IncJobSearch increments the job-search request counter.
func IncJobSearch() {
	jobSearchTotal.v.Add(1)
}

// IncJobSearchFailed increments the swallowed job-search failure counter.
func IncJobSearchFailed() {
	jobSearchFailsTotal.v.Add(1)
}

// ObserveAIDurationMs records an AI completion duration in milliseconds.
func ObserveAIDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	aiDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "activity_records_resume_total", "Total RESUME activity records appended", recordsResumeTotal.v.Load())
	writeCounter(&buf, "activity_records_email_total", "Total EMAIL activity records appended", recordsEmailTotal.v.Load())
	writeCounter(&buf, "activity_records_upload_total", "Total UPLOAD activity records appended", recordsUploadTotal.v.Load())
	writeCounter(&buf, "activity_records_other_total", "Total activity records appended with unrecognized mode tags", recordsOtherTotal.v.Load())
	writeCounter(&buf, "ai_requests_total", "Total AI completion requests", aiRequestsTotal.v.Load())
	writeCounter(&buf, "ai_failed_total", "Total AI completion failures", aiFailedTotal.v.Load())
	writeCounter(&buf, "job_search_total", "Total job-search requests", jobSearchTotal.v.Load())
	writeCounter(&buf, "job_search_failed_total", "Total job-search failures degraded to empty results", jobSearchFailsTotal.v.Load())
	writeHistogram(&buf, "ai_duration_ms", "AI completion duration in milliseconds", aiDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, formatBound(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, strconv.FormatFloat(snap.sum, 'f', -1, 64))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}
