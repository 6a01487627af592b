package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

const reconcileTimeout = 5 * time.Minute

// Reconcile 按 likes 集合重新统计所有内容的点赞数，返回校准的内容数
func (a *App) Reconcile(ctx context.Context) (int, error) {
	fixed := 0
	for t, counter := range a.targets {
		ids, err := counter.ListIDs(ctx)
		if err != nil {
			return fixed, err
		}
		for _, id := range ids {
			n, err := a.LikeService.Count(ctx, t, id)
			if err != nil {
				return fixed, err
			}
			if err := counter.SetLikeCount(ctx, id, n); err != nil {
				return fixed, err
			}
			fixed++
		}
	}
	return fixed, nil
}

// Reconciler 定时执行点赞数校准
type Reconciler struct {
	app  *App
	cron *cron.Cron
	spec string
}

func NewReconciler(app *App, spec string) *Reconciler {
	return &Reconciler{
		app:  app,
		cron: cron.New(),
		spec: spec,
	}
}

func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(r.spec, r.run)
	if err != nil {
		return r.app.err.New("点赞校准任务表达式错误: "+r.spec, err).ValidWithCtx()
	}
	r.cron.Start()
	r.app.log.WithField("spec", r.spec).Info("点赞校准任务已启动")
	return nil
}

// Stop 等待正在执行的任务结束
func (r *Reconciler) Stop() context.Context {
	return r.cron.Stop()
}

func (r *Reconciler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	start := time.Now()
	n, err := r.app.Reconcile(ctx)
	if err != nil {
		r.app.log.WithErr(err).Error("点赞数校准失败")
		return
	}
	r.app.log.WithField("count", n).WithField("cost", time.Since(start).String()).Info("点赞数校准完成")
}
