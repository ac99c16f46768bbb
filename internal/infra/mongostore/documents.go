package mongostore

import (
	"time"

	"smart-parking/internal/domain/lot"
	"smart-parking/internal/domain/spot"
	"smart-parking/internal/domain/user"

	"github.com/google/uuid"
)

// Ids are stored as canonical UUID strings so documents stay readable in the shell.

type lotDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Location      string    `bson:"location"`
	TotalCapacity int       `bson:"totalCapacity"`
	Description   *string   `bson:"description,omitempty"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

type spotDocument struct {
	ID          string    `bson:"_id"`
	LotID       string    `bson:"lotId"`
	Label       string    `bson:"label"`
	Status      string    `bson:"status"`
	Floor       *string   `bson:"floor,omitempty"`
	Section     *string   `bson:"section,omitempty"`
	LastUpdated time.Time `bson:"lastUpdated"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"createdAt"`
}

func lotToDocument(l *lot.Lot) lotDocument {
	return lotDocument{
		ID:            l.ID().String(),
		Name:          l.Name(),
		Location:      l.Location(),
		TotalCapacity: l.TotalCapacity(),
		Description:   l.Description(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func spotToDocument(s *spot.Spot) spotDocument {
	return spotDocument{
		ID:          s.ID().String(),
		LotID:       s.LotID().String(),
		Label:       s.Label().String(),
		Status:      s.Status().String(),
		Floor:       s.Floor(),
		Section:     s.Section(),
		LastUpdated: s.LastUpdated(),
		CreatedAt:   s.CreatedAt(),
	}
}

func userToDocument(u *user.User) userDocument {
	return userDocument{
		ID:           u.ID().String(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

// parseID tolerates corrupt ids by mapping them to uuid.Nil.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
