package model

import (
	"storyhub/pkg/core/model/common"
	"storyhub/pkg/target"
)

const CollectionName = "comments"

// Comment 评论，挂在故事或曲目下
type Comment struct {
	common.Model `bson:",inline"`
	TargetType   target.Type `bson:"targetType" json:"targetType"`
	TargetID     string      `bson:"targetId" json:"targetId"`
	UserID       string      `bson:"userId" json:"userId"`
	Username     string      `bson:"username" json:"username"`
	Body         string      `bson:"body" json:"body"`
}
