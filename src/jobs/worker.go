package jobs

import (
	"Backend-WMS-ROI/src/database"
	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/src/services/assessments"
	"Backend-WMS-ROI/src/services/reports"
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const staleDraftAge = 90 * 24 * time.Hour

// HandleReportExportTask renders the report snapshot to a JSON payload and
// stores it on the report's exports list.
func HandleReportExportTask(ctx context.Context, t *asynq.Task) error {
	var payload ReportExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	report, err := reports.GetReportByID(payload.ReportID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Report not found. Possibly deleted. Skipping export:", payload.ReportID)
			return nil
		}
		return err
	}

	rendered, err := json.Marshal(report.Body)
	if err != nil {
		return err
	}

	requestedBy, _ := primitive.ObjectIDFromHex(payload.RequestedBy)
	now := time.Now()
	export := models.ReportExport{
		RequestedBy: requestedBy,
		RequestedAt: now,
		CompletedAt: &now,
		Payload:     string(rendered),
	}

	if err := reports.AppendExport(ctx, report.ID, export); err != nil {
		log.Println("❌ Failed to store report export:", err)
		return err
	}

	log.Println("✅ Report exported:", payload.ReportID)
	return nil
}

// HandleAuditRetentionTask purges audit entries past AUDIT_RETENTION_DAYS
// (default 365).
func HandleAuditRetentionTask(ctx context.Context, t *asynq.Task) error {
	days := 365
	if v := os.Getenv("AUDIT_RETENTION_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := services.PurgeAuditLogsOlderThan(ctx, cutoff)
	if err != nil {
		log.Println("❌ Audit retention sweep failed:", err)
		return err
	}

	log.Printf("✅ Audit retention sweep removed %d entries", deleted)
	scheduleMaintenance(NewAuditRetentionTask, "audit-retention", nextMidnight(time.Now()))
	return nil
}

// HandleAutoArchiveTask archives drafts untouched for 90 days.
func HandleAutoArchiveTask(ctx context.Context, t *asynq.Task) error {
	archived, err := assessments.ArchiveStaleDrafts(ctx, staleDraftAge)
	if err != nil {
		log.Println("❌ Auto-archive failed:", err)
		return err
	}

	if archived > 0 {
		log.Printf("✅ Auto-archived %d stale draft assessments", archived)
	}
	scheduleMaintenance(NewAutoArchiveTask, "auto-archive", nextMidnight(time.Now()))
	return nil
}

// StartWorker runs the asynq worker in the background. No-op when Redis is
// unavailable.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available → background worker disabled")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReportExport, HandleReportExportTask)
	mux.HandleFunc(TypeAuditRetention, HandleAuditRetentionTask)
	mux.HandleFunc(TypeAutoArchive, HandleAutoArchiveTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}

func nextMidnight(now time.Time) time.Time {
	return now.Truncate(24 * time.Hour).Add(24 * time.Hour)
}

func maintenanceTaskID(prefix string, runAt time.Time) string {
	return prefix + "-" + runAt.Format("2006-01-02")
}

// scheduleMaintenance enqueues one run of a maintenance task. The per-day
// TaskID keeps startup and the handlers' self-rescheduling from double-
// enqueueing the same day.
func scheduleMaintenance(newTask func() (*asynq.Task, error), prefix string, runAt time.Time) {
	if database.AsynqClient == nil {
		return
	}

	task, err := newTask()
	if err != nil {
		log.Println("maintenance: create task failed:", err)
		return
	}

	if _, err := database.AsynqClient.Enqueue(
		task,
		asynq.ProcessAt(runAt),
		asynq.TaskID(maintenanceTaskID(prefix, runAt)),
	); err != nil && err != asynq.ErrTaskIDConflict {
		log.Println("maintenance: enqueue", prefix, "failed:", err)
	}
}

// ScheduleMaintenanceJobs enqueues the retention and auto-archive tasks for
// the coming midnight. Each handler reschedules itself for the next day, so
// the sweeps keep running daily for the life of the process.
func ScheduleMaintenanceJobs() {
	if database.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip scheduling maintenance jobs")
		return
	}

	runAt := nextMidnight(time.Now())
	scheduleMaintenance(NewAuditRetentionTask, "audit-retention", runAt)
	scheduleMaintenance(NewAutoArchiveTask, "auto-archive", runAt)
}

// EnqueueReportExport queues an export for a report. Returns false when the
// worker is unavailable so the controller can fall back to a synchronous
// export.
func EnqueueReportExport(reportID, requestedBy string) bool {
	if database.AsynqClient == nil {
		return false
	}

	task, err := NewReportExportTask(reportID, requestedBy)
	if err != nil {
		log.Println("export: create task failed:", err)
		return false
	}

	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("export: enqueue failed:", err)
		return false
	}
	return true
}
