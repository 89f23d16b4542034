package schema

// ProductionsTable represents the 'productions' table
type ProductionsTable struct {
	Table       string
	ID          string
	Code        string
	Type        string
	Title       string
	ReleaseDate string
	Comment     string
	StudioID    string
	ParentID    string
	CreatedAt   string
	UpdatedAt   string
}

// Productions is the schema definition for productions
var Productions = ProductionsTable{
	Table:       "productions",
	ID:          "id",
	Code:        "code",
	Type:        "type",
	Title:       "title",
	ReleaseDate: "release_date",
	Comment:     "comment",
	StudioID:    "studio_id",
	ParentID:    "parent_id",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// PerformancesTable represents the 'performances' table
type PerformancesTable struct {
	Table         string
	ID            string
	ProductionID  string
	StageNameID   string
	Role          string
	PerformerType string
}

// Performances is the schema definition for performances
var Performances = PerformancesTable{
	Table:         "performances",
	ID:            "id",
	ProductionID:  "production_id",
	StageNameID:   "stage_name_id",
	Role:          "role",
	PerformerType: "performer_type",
}
