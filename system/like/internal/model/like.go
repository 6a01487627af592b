package model

import (
	"storyhub/pkg/core/model/common"
	"storyhub/pkg/target"
)

const CollectionName = "likes"

// Like 用户对内容的点赞，(targetType, targetId, userId) 唯一
type Like struct {
	common.Model `bson:",inline"`
	TargetType   target.Type `bson:"targetType" json:"targetType"`
	TargetID     string      `bson:"targetId" json:"targetId"`
	UserID       string      `bson:"userId" json:"userId"`
}
