package domain

import "strings"

// Field identifies one column of a resource record
type Field int

const (
	FieldUnknown Field = iota
	FieldCategory
	FieldSubcategory
	FieldName
	FieldType
	FieldCost
	FieldDescription
	FieldURL
	FieldSkillLevel
	FieldPriority
)

// fieldInfo maps each field to its dataset key and its short name
var fieldInfo = map[Field]struct {
	key   string
	short string
}{
	FieldCategory:    {"Category", "category"},
	FieldSubcategory: {"Subcategory", "subcategory"},
	FieldName:        {"Resource Name", "name"},
	FieldType:        {"Type", "type"},
	FieldCost:        {"Cost", "cost"},
	FieldDescription: {"Description", "description"},
	FieldURL:         {"URL/Source", "url"},
	FieldSkillLevel:  {"Skill Level", "skill"},
	FieldPriority:    {"Priority", "priority"},
}

// Columns lists every field in table order
var Columns = []Field{
	FieldCategory,
	FieldSubcategory,
	FieldName,
	FieldType,
	FieldCost,
	FieldURL,
	FieldDescription,
	FieldSkillLevel,
	FieldPriority,
}

// FilterFields lists the fields that accept an exact-match filter, in display order
var FilterFields = []Field{
	FieldCategory,
	FieldSubcategory,
	FieldType,
	FieldCost,
	FieldSkillLevel,
	FieldPriority,
}

// SearchFields lists the fields joined into the fuzzy search haystack, in order
var SearchFields = []Field{
	FieldCategory,
	FieldSubcategory,
	FieldName,
	FieldType,
	FieldDescription,
	FieldURL,
}

// Key returns the dataset key for the field (e.g., "Skill Level")
func (f Field) Key() string {
	if info, ok := fieldInfo[f]; ok {
		return info.key
	}
	return ""
}

// Name returns the short lowercase name used by the CLI and MCP tools
func (f Field) Name() string {
	if info, ok := fieldInfo[f]; ok {
		return info.short
	}
	return "unknown"
}

// String returns the dataset key, or "Unknown"
func (f Field) String() string {
	if key := f.Key(); key != "" {
		return key
	}
	return "Unknown"
}

// IsFilterable reports whether the field accepts an exact-match filter
func (f Field) IsFilterable() bool {
	for _, ff := range FilterFields {
		if ff == f {
			return true
		}
	}
	return false
}

// ParseField resolves a dataset key or short name (case-insensitive).
// Returns FieldUnknown when nothing matches.
func ParseField(s string) Field {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FieldUnknown
	}
	for f, info := range fieldInfo {
		if s == info.short || s == strings.ToLower(info.key) {
			return f
		}
	}
	switch s {
	case "resource", "resource_name", "resourcename":
		return FieldName
	case "skill_level", "skilllevel", "level":
		return FieldSkillLevel
	case "source", "url_source":
		return FieldURL
	}
	return FieldUnknown
}

// Record is one catalog entry. Missing dataset keys are stored as "".
type Record struct {
	Category    string `json:"Category"`
	Subcategory string `json:"Subcategory"`
	Name        string `json:"Resource Name"`
	Type        string `json:"Type"`
	Cost        string `json:"Cost"`
	Description string `json:"Description"`
	URL         string `json:"URL/Source"`
	SkillLevel  string `json:"Skill Level"`
	Priority    string `json:"Priority"`
}

// Value returns the record's value for a field, "" for FieldUnknown
func (r Record) Value(f Field) string {
	switch f {
	case FieldCategory:
		return r.Category
	case FieldSubcategory:
		return r.Subcategory
	case FieldName:
		return r.Name
	case FieldType:
		return r.Type
	case FieldCost:
		return r.Cost
	case FieldDescription:
		return r.Description
	case FieldURL:
		return r.URL
	case FieldSkillLevel:
		return r.SkillLevel
	case FieldPriority:
		return r.Priority
	default:
		return ""
	}
}

// RecordFromMap builds a record from a key/value mapping keyed by dataset keys.
// Absent keys become "".
func RecordFromMap(m map[string]string) Record {
	return Record{
		Category:    m[FieldCategory.Key()],
		Subcategory: m[FieldSubcategory.Key()],
		Name:        m[FieldName.Key()],
		Type:        m[FieldType.Key()],
		Cost:        m[FieldCost.Key()],
		Description: m[FieldDescription.Key()],
		URL:         m[FieldURL.Key()],
		SkillLevel:  m[FieldSkillLevel.Key()],
		Priority:    m[FieldPriority.Key()],
	}
}

// SearchText joins the searchable fields with single spaces
func (r Record) SearchText() string {
	parts := make([]string, len(SearchFields))
	for i, f := range SearchFields {
		parts[i] = r.Value(f)
	}
	return strings.Join(parts, " ")
}
