package models

// Product categories form a closed set; anything else is rejected at the
// validation boundary.
const (
	CategoryPrinted     = "3d-printed"
	CategoryEngraved    = "laser-engraved"
	CategoryElectronics = "electronics"
)

// Categories lists every valid product category.
func Categories() []string {
	return []string{CategoryPrinted, CategoryEngraved, CategoryElectronics}
}

// ProductSpec is the optional structured attribute bag attached to a
// product. All fields are optional; there are no cross-field invariants.
type ProductSpec struct {
	DimensionsMM    string   `bson:"dimensions_mm,omitempty"    json:"dimensions_mm,omitempty"`
	WeightG         float64  `bson:"weight_g,omitempty"         json:"weight_g,omitempty"`
	Materials       []string `bson:"materials,omitempty"        json:"materials,omitempty"`
	VoltageRangeV   string   `bson:"voltage_range_v,omitempty"  json:"voltage_range_v,omitempty"`
	CurrentMaxA     float64  `bson:"current_max_a,omitempty"    json:"current_max_a,omitempty"`
	ToleranceMM     float64  `bson:"tolerance_mm,omitempty"     json:"tolerance_mm,omitempty"`
	MountingPattern string   `bson:"mounting_pattern,omitempty" json:"mounting_pattern,omitempty"`
	Compatibility   []string `bson:"compatibility,omitempty"    json:"compatibility,omitempty"`
}

// Product is the catalogue entity, stored in the "product" collection.
// Created via seeding only; the query path treats it as read-only.
type Product struct {
	Title       string       `bson:"title"           json:"title"       validate:"required"`
	Slug        string       `bson:"slug"            json:"slug"        validate:"required,alpha_dash"`
	Description string       `bson:"description"     json:"description"`
	Category    string       `bson:"category"        json:"category"    validate:"required,in=3d-printed,laser-engraved,electronics"`
	Price       float64      `bson:"price"           json:"price"       validate:"gte=0"`
	InStock     bool         `bson:"in_stock"        json:"in_stock"`
	Images      []string     `bson:"images"          json:"images"`
	Tags        []string     `bson:"tags"            json:"tags"`
	Specs       *ProductSpec `bson:"specs,omitempty" json:"specs,omitempty"`
}
