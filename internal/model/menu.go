package model

import "go.mongodb.org/mongo-driver/bson"

// MenuItem is a dish offered by the restaurant.
type MenuItem struct {
	ID       interface{} `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string      `json:"name" bson:"name"`
	Recipe   string      `json:"recipe" bson:"recipe"`
	Image    string      `json:"image" bson:"image"`
	Category string      `json:"category" bson:"category"`
	Price    float64     `json:"price" bson:"price"`
}

// MenuItemPatch carries the updatable menu fields. Nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string  `json:"name"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// SetFields returns the $set document for the fields present in the patch.
func (p MenuItemPatch) SetFields() bson.M {
	fields := bson.M{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Recipe != nil {
		fields["recipe"] = *p.Recipe
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	return fields
}
