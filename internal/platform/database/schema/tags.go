package schema

// TagsTable represents the 'tags' table
type TagsTable struct {
	Table    string
	ID       string
	Category string
	Name     string
}

// Tags is the schema definition for tags
var Tags = TagsTable{
	Table:    "tags",
	ID:       "id",
	Category: "category",
	Name:     "name",
}

// ProductionTagsTable represents the 'production_tags' junction table
type ProductionTagsTable struct {
	Table        string
	ProductionID string
	TagID        string
}

// ProductionTags is the schema definition for production_tags
var ProductionTags = ProductionTagsTable{
	Table:        "production_tags",
	ProductionID: "production_id",
	TagID:        "tag_id",
}
