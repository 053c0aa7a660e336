package models

// User is read-only in this service; accounts are provisioned out of band.
// Passwords are stored as-is to stay compatible with the existing collection.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Username string `gorm:"size:255;index" json:"username"`
	Password string `gorm:"size:255" json:"-"`
	Role     string `gorm:"size:64" json:"role"`
}

func (User) TableName() string {
	return "users"
}
