package app

import (
	"context"
	"strings"

	"storyhub/pkg/core/mvc"
	"storyhub/pkg/target"
	"storyhub/system/comment/api/dto"
	"storyhub/system/comment/internal/model"
	"storyhub/utils"
)

// Author 评论发表人
type Author struct {
	UserID   string
	Username string
	IsAdmin  bool
}

func (a *App) ListComments(ctx context.Context, t target.Type, targetID string, page *mvc.CursorPage) (*mvc.CursorResult[*dto.CommentDTO], error) {
	if _, err := a.targets.MustExist(ctx, t, targetID); err != nil {
		return nil, err
	}
	comments, hasMore, err := a.CommentService.ListByTarget(ctx, t, targetID, page)
	if err != nil {
		return nil, err
	}
	res := mvc.NewCursorResult(comments, hasMore, func(c *model.Comment) string { return c.IDHex() })
	return mvc.MapCursorResult(res, ToDTO), nil
}

// CreateComment 发表评论并维护内容的评论数
func (a *App) CreateComment(ctx context.Context, t target.Type, targetID string, author Author, req *dto.CreateCommentReq) (*dto.CommentDTO, error) {
	req.Body = strings.TrimSpace(req.Body)
	if err := utils.ValidateRequest(req); err != nil {
		return nil, err
	}
	counter, err := a.targets.MustExist(ctx, t, targetID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		TargetType: t,
		TargetID:   targetID,
		UserID:     author.UserID,
		Username:   author.Username,
		Body:       req.Body,
	}
	if err := a.CommentService.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := counter.IncCommentCount(ctx, targetID, 1); err != nil {
		// 评论已落库，计数偏差由日志暴露
		a.log.WithTrace(ctx).WithUserID(author.UserID).WithErr(err).WithField("targetId", targetID).Error("更新评论数失败")
	}
	return ToDTO(comment), nil
}

// DeleteComment 仅评论作者或管理员可以删除
func (a *App) DeleteComment(ctx context.Context, id string, operator Author) error {
	comment, err := a.CommentService.FindById(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != operator.UserID && !operator.IsAdmin {
		return a.err.New("无权删除该评论", nil).Forbidden()
	}

	deleted, err := a.CommentService.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return a.err.New("评论不存在", nil).NotFound()
	}

	counter, err := a.targets.Get(comment.TargetType)
	if err != nil {
		return err
	}
	if err := counter.IncCommentCount(ctx, comment.TargetID, -1); err != nil {
		a.log.WithTrace(ctx).WithUserID(operator.UserID).WithErr(err).WithField("targetId", comment.TargetID).Error("更新评论数失败")
	}
	return nil
}

// DeleteByTarget 内容删除后的级联清理
func (a *App) DeleteByTarget(ctx context.Context, t target.Type, targetID string) error {
	n, err := a.CommentService.DeleteByTarget(ctx, t, targetID)
	if err != nil {
		return err
	}
	a.log.WithTrace(ctx).WithField("targetId", targetID).WithField("count", n).Info("删除内容下的评论")
	return nil
}

func ToDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:         c.IDHex(),
		TargetType: string(c.TargetType),
		TargetID:   c.TargetID,
		UserID:     c.UserID,
		Username:   c.Username,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}
