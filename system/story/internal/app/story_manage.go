package app

import (
	"context"

	"storyhub/pkg/core/mvc"
	"storyhub/pkg/streaming"
	"storyhub/pkg/target"
	"storyhub/system/story/api/dto"
	"storyhub/system/story/internal/model"
	"storyhub/utils"
)

// CreateStory 创建故事，音频与封面必须已上传
func (a *App) CreateStory(ctx context.Context, authorID string, req *dto.SaveStoryReq) (*dto.StoryDTO, error) {
	if err := a.validate(ctx, req); err != nil {
		return nil, err
	}

	story := &model.Story{AuthorID: authorID}
	apply(story, req)
	if err := a.StoryService.Create(ctx, story); err != nil {
		return nil, err
	}

	a.log.WithTrace(ctx).WithField("storyId", story.IDHex()).Info("创建故事")
	return ToDTO(story), nil
}

// UpdateStory 整体更新故事内容，计数与作者保持不变
func (a *App) UpdateStory(ctx context.Context, id string, req *dto.SaveStoryReq) (*dto.StoryDTO, error) {
	if err := a.validate(ctx, req); err != nil {
		return nil, err
	}

	story, err := a.StoryService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(story, req)
	if err := a.StoryService.Update(ctx, story); err != nil {
		return nil, err
	}
	return ToDTO(story), nil
}

// DeleteStory 删除故事并级联删除评论与点赞
func (a *App) DeleteStory(ctx context.Context, id string) error {
	if err := a.StoryService.Delete(ctx, id); err != nil {
		return err
	}

	var firstErr error
	for _, clean := range a.cleaners {
		if err := clean(ctx, target.Story, id); err != nil {
			a.log.WithTrace(ctx).WithErr(err).WithField("storyId", id).Error("级联清理失败")
			if firstErr == nil {
				firstErr = a.err.New("故事已删除，级联清理失败", err)
			}
		}
	}
	return firstErr
}

// GetPublishedStory 公开接口只能看到已发布的故事
func (a *App) GetPublishedStory(ctx context.Context, id string) (*dto.StoryDTO, error) {
	story, err := a.StoryService.FindPublished(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(story), nil
}

func (a *App) GetStory(ctx context.Context, id string) (*dto.StoryDTO, error) {
	story, err := a.StoryService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(story), nil
}

// ListStories publishedOnly 为 false 时包含草稿，仅供后台使用
func (a *App) ListStories(ctx context.Context, publishedOnly bool, page *mvc.CursorPage) (*mvc.CursorResult[*dto.StoryDTO], error) {
	stories, hasMore, err := a.StoryService.ListPage(ctx, publishedOnly, page)
	if err != nil {
		return nil, err
	}
	res := mvc.NewCursorResult(stories, hasMore, func(s *model.Story) string { return s.IDHex() })
	return mvc.MapCursorResult(res, ToDTO), nil
}

func (a *App) validate(ctx context.Context, req *dto.SaveStoryReq) error {
	if err := utils.ValidateRequest(req); err != nil {
		return err
	}
	if err := a.checkMedia(ctx, req.AudioKey, "音频文件不存在"); err != nil {
		return err
	}
	if req.CoverKey != "" {
		return a.checkMedia(ctx, req.CoverKey, "封面文件不存在")
	}
	return nil
}

func (a *App) checkMedia(ctx context.Context, key, msg string) error {
	ok, err := a.media.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return a.err.New(msg+": "+key, nil).ValidWithCtx()
	}
	return nil
}

func apply(story *model.Story, req *dto.SaveStoryReq) {
	story.Title = req.Title
	story.Description = req.Description
	story.AudioKey = req.AudioKey
	story.CoverKey = req.CoverKey
	story.DurationSeconds = req.DurationSeconds
	story.Published = req.Published
}

// ToDTO 模型转 DTO，附带媒体流访问路径
func ToDTO(story *model.Story) *dto.StoryDTO {
	return &dto.StoryDTO{
		ID:              story.IDHex(),
		Title:           story.Title,
		Description:     story.Description,
		AudioKey:        story.AudioKey,
		AudioURL:        streaming.StreamPath(story.AudioKey),
		CoverKey:        story.CoverKey,
		CoverURL:        streaming.StreamPath(story.CoverKey),
		DurationSeconds: story.DurationSeconds,
		AuthorID:        story.AuthorID,
		Published:       story.Published,
		LikeCount:       story.LikeCount,
		CommentCount:    story.CommentCount,
		CreatedAt:       story.CreatedAt,
		UpdatedAt:       story.UpdatedAt,
	}
}
