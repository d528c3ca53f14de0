package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ConnectionStatus is the lifecycle state of a connection request.
//
// interested and ignored are the only legal creation statuses; accepted and
// rejected are reachable only by the receiver reviewing a request that is
// still interested. accepted, rejected and ignored are terminal.
type ConnectionStatus string

const (
	StatusIgnored    ConnectionStatus = "ignored"
	StatusInterested ConnectionStatus = "interested"
	StatusAccepted   ConnectionStatus = "accepted"
	StatusRejected   ConnectionStatus = "rejected"
)

// SendStatus reports whether s is legal when creating a request.
func SendStatus(s ConnectionStatus) bool {
	return s == StatusInterested || s == StatusIgnored
}

// ReviewStatus reports whether s is legal when reviewing a request.
func ReviewStatus(s ConnectionStatus) bool {
	return s == StatusAccepted || s == StatusRejected
}

type Connection struct {
	ID         bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	FromUserID bson.ObjectID    `bson:"from_user_id" json:"fromUserId"`
	ToUserID   bson.ObjectID    `bson:"to_user_id" json:"toUserId"`
	Status     ConnectionStatus `bson:"status" json:"status"`
	// PairMin/PairMax hold the byte-wise min/max of the two party ids;
	// a unique compound index on them enforces unordered-pair uniqueness.
	PairMin   bson.ObjectID `bson:"pair_min" json:"-"`
	PairMax   bson.ObjectID `bson:"pair_max" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
	// Joined fields
	FromUser *UserSummary `bson:"-" json:"fromUser,omitempty"`
	ToUser   *UserSummary `bson:"-" json:"toUser,omitempty"`
}

// NormalizePair returns the two ids in canonical (min, max) order.
func NormalizePair(a, b bson.ObjectID) (bson.ObjectID, bson.ObjectID) {
	if a.Hex() > b.Hex() {
		return b, a
	}
	return a, b
}
