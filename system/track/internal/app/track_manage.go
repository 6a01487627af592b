package app

import (
	"context"

	"storyhub/pkg/core/mvc"
	"storyhub/pkg/streaming"
	"storyhub/pkg/target"
	"storyhub/system/track/api/dto"
	"storyhub/system/track/internal/model"
	"storyhub/utils"
)

func (a *App) CreateTrack(ctx context.Context, uploaderID string, req *dto.SaveTrackReq) (*dto.TrackDTO, error) {
	if err := a.validate(ctx, req); err != nil {
		return nil, err
	}

	track := &model.Track{UploaderID: uploaderID}
	apply(track, req)
	if err := a.TrackService.Create(ctx, track); err != nil {
		return nil, err
	}

	a.log.WithTrace(ctx).WithField("trackId", track.IDHex()).Info("创建曲目")
	return ToDTO(track), nil
}

func (a *App) UpdateTrack(ctx context.Context, id string, req *dto.SaveTrackReq) (*dto.TrackDTO, error) {
	if err := a.validate(ctx, req); err != nil {
		return nil, err
	}

	track, err := a.TrackService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(track, req)
	if err := a.TrackService.Update(ctx, track); err != nil {
		return nil, err
	}
	return ToDTO(track), nil
}

// DeleteTrack 删除曲目，级联清理失败时曲目本身仍已删除
func (a *App) DeleteTrack(ctx context.Context, id string) error {
	if err := a.TrackService.Delete(ctx, id); err != nil {
		return err
	}

	var firstErr error
	for _, clean := range a.cleaners {
		if err := clean(ctx, target.Track, id); err != nil {
			a.log.WithTrace(ctx).WithErr(err).WithField("trackId", id).Error("级联清理失败")
			if firstErr == nil {
				firstErr = a.err.New("曲目已删除，级联清理失败", err)
			}
		}
	}
	return firstErr
}

func (a *App) GetTrack(ctx context.Context, id string) (*dto.TrackDTO, error) {
	track, err := a.TrackService.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(track), nil
}

func (a *App) ListTracks(ctx context.Context, req *dto.ListTrackReq) (*mvc.CursorResult[*dto.TrackDTO], error) {
	page := &mvc.CursorPage{Cursor: req.Cursor, Limit: req.Limit}
	tracks, hasMore, err := a.TrackService.ListPage(ctx, req.Genre, page)
	if err != nil {
		return nil, err
	}
	res := mvc.NewCursorResult(tracks, hasMore, func(t *model.Track) string { return t.IDHex() })
	return mvc.MapCursorResult(res, ToDTO), nil
}

func (a *App) validate(ctx context.Context, req *dto.SaveTrackReq) error {
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

func apply(track *model.Track, req *dto.SaveTrackReq) {
	track.Title = req.Title
	track.Artist = req.Artist
	track.Album = req.Album
	track.Genre = req.Genre
	track.AudioKey = req.AudioKey
	track.CoverKey = req.CoverKey
	track.DurationSeconds = req.DurationSeconds
}

func ToDTO(track *model.Track) *dto.TrackDTO {
	return &dto.TrackDTO{
		ID:              track.IDHex(),
		Title:           track.Title,
		Artist:          track.Artist,
		Album:           track.Album,
		Genre:           track.Genre,
		AudioKey:        track.AudioKey,
		AudioURL:        streaming.StreamPath(track.AudioKey),
		CoverKey:        track.CoverKey,
		CoverURL:        streaming.StreamPath(track.CoverKey),
		DurationSeconds: track.DurationSeconds,
		UploaderID:      track.UploaderID,
		LikeCount:       track.LikeCount,
		CommentCount:    track.CommentCount,
		CreatedAt:       track.CreatedAt,
		UpdatedAt:       track.UpdatedAt,
	}
}
