package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Gender values accepted on a profile.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Others"
)

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	FirstName    string        `bson:"first_name" json:"firstName"`
	LastName     string        `bson:"last_name" json:"lastName"`
	Age          *int          `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string        `bson:"gender,omitempty" json:"gender,omitempty"`
	PhotoURL     string        `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Skills       []string      `bson:"skills,omitempty" json:"skills,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the safe projection of a user attached to connection
// responses and feed pages. It never carries the password hash.
type UserSummary struct {
	ID          bson.ObjectID `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	Age         *int          `json:"age,omitempty"`
	Gender      string        `json:"gender,omitempty"`
	PhotoURL    string        `json:"photoUrl,omitempty"`
	Description string        `json:"description,omitempty"`
	Skills      []string      `json:"skills,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Age:         u.Age,
		Gender:      u.Gender,
		PhotoURL:    u.PhotoURL,
		Description: u.Description,
		Skills:      u.Skills,
	}
}
