package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeReportExport = "report:export"

type ReportExportPayload struct {
	ReportID    string `json:"report_id"`
	RequestedBy string `json:"requested_by"`
}

func NewReportExportTask(reportID, requestedBy string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReportExportPayload{ReportID: reportID, RequestedBy: requestedBy})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReportExport, payload), nil
}

const TypeAuditRetention = "audit:retention"

func NewAuditRetentionTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeAuditRetention, nil), nil
}

const TypeAutoArchive = "assessment:auto_archive"

func NewAutoArchiveTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeAutoArchive, nil), nil
}
