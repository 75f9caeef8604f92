package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportDraft    = "draft"
	ReportFinal    = "final"
	ReportArchived = "archived"
)

// RoiSnapshot is the server-side ROI projection frozen into a report at
// generation time. The front-end previews the same numbers, but the stored
// report is authoritative.
type RoiSnapshot struct {
	AnnualLaborCost    float64   `bson:"annualLaborCost" json:"annualLaborCost"`
	LaborSavings       float64   `bson:"laborSavings" json:"laborSavings"`
	ErrorSavings       float64   `bson:"errorSavings" json:"errorSavings"`
	InventorySavings   float64   `bson:"inventorySavings" json:"inventorySavings"`
	TotalAnnualBenefit float64   `bson:"totalAnnualBenefit" json:"totalAnnualBenefit"`
	ImplementationCost float64   `bson:"implementationCost" json:"implementationCost"`
	PaybackMonths      float64   `bson:"paybackMonths" json:"paybackMonths"` // -1 = not reached
	FiveYearNPV        float64   `bson:"fiveYearNpv" json:"fiveYearNpv"`
	DiscountRate       float64   `bson:"discountRate" json:"discountRate"`
	ComputedAt         time.Time `bson:"computedAt" json:"computedAt"`
}

// ReportBody is the versioned part of a report: everything that changes
// between edits and gets snapshotted into report_versions.
type ReportBody struct {
	Title           string           `bson:"title" json:"title"`
	Summary         string           `bson:"summary" json:"summary"`
	Roi             RoiSnapshot      `bson:"roi" json:"roi"`
	Recommendations []Recommendation `bson:"recommendations" json:"recommendations"`
}

type ReportExport struct {
	RequestedBy primitive.ObjectID `bson:"requestedBy" json:"requestedBy"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requestedAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Payload     string             `bson:"payload,omitempty" json:"payload,omitempty"`
}

type Report struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentID   primitive.ObjectID `bson:"assessmentId" json:"assessmentId"`
	CompanyID      primitive.ObjectID `bson:"companyId" json:"companyId"`
	Status         string             `bson:"status" json:"status"`
	CurrentVersion int                `bson:"currentVersion" json:"currentVersion"`
	Body           ReportBody         `bson:"body" json:"body"`
	ShareToken     string             `bson:"shareToken,omitempty" json:"shareToken,omitempty"`
	Exports        []ReportExport     `bson:"exports,omitempty" json:"exports,omitempty"`
	GeneratedBy    primitive.ObjectID `bson:"generatedBy,omitempty" json:"generatedBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReportVersion is one frozen body in the history. Version numbers are
// 1-based and only ever appended.
type ReportVersion struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ReportID primitive.ObjectID `bson:"reportId" json:"reportId"`
	Version  int                `bson:"version" json:"version"`
	Body     ReportBody         `bson:"body" json:"body"`
	SavedBy  primitive.ObjectID `bson:"savedBy,omitempty" json:"savedBy,omitempty"`
	Note     string             `bson:"note,omitempty" json:"note,omitempty"`
	SavedAt  time.Time          `bson:"savedAt" json:"savedAt"`
}
