package models

// Category is a service catalog category document.
type Category struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description,omitempty"`
	ImageURL    string `bson:"image_url" json:"imageUrl,omitempty"`
}

// Service is a bookable salon service. Services appear both inside a category
// (catalog browsing) and in the flat per-salon listing.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	CategoryID  string  `bson:"category_id" json:"categoryId,omitempty"`
	SalonID     string  `bson:"salon_id" json:"salonId,omitempty"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description,omitempty"`
	Duration    int     `bson:"duration" json:"duration,omitempty"`
	Price       float64 `bson:"price" json:"price,omitempty"`
	ImageURL    string  `bson:"image_url" json:"imageUrl,omitempty"`
}
