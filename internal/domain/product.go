package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Image       []string           `json:"image" bson:"image"`
	Stock       int                `json:"stock" bson:"stock"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	SubCategory string             `json:"subCategory,omitempty" bson:"sub_category,omitempty"`
	Accessories bool               `json:"accessories" bson:"accessories"`
	Bestseller  bool               `json:"bestseller" bson:"bestseller"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

// PrimaryImage returns the first image reference, used when an order
// snapshots a single image per line item.
func (p *Product) PrimaryImage() string {
	if len(p.Image) == 0 {
		return ""
	}
	return p.Image[0]
}
