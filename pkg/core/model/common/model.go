package common

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model 文档公共字段
type Model struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Init 新建文档前调用，分配ID并写入时间
func (m *Model) Init() {
	now := time.Now()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

func (m *Model) IDHex() string {
	return m.ID.Hex()
}
