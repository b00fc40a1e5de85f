package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one menu item placed in a customer's cart.
type CartItem struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MenuID string             `json:"menuId" bson:"menuId"`
	Email  string             `json:"email" bson:"email"`
	Name   string             `json:"name" bson:"name"`
	Image  string             `json:"image" bson:"image"`
	Price  float64            `json:"price" bson:"price"`
}
