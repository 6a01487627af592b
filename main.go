package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"storyhub/app"
	"storyhub/pkg/core/start"
	"storyhub/pkg/core/system"
	"storyhub/router"
)

func main() {
	env, filename := getBaseInfo()

	file, err := os.ReadFile(filename)
	if err != nil {
		panic(fmt.Sprintf("读取配置文件失败,因为：%v", err))
	}

	configures := start.NewConfigures(file, env)
	log := configures.Logger

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	appRoot, err := app.NewApp(ctx, configures)
	if err != nil {
		cancel()
		log.WithErr(err).Panic("初始化应用失败")
	}

	// 执行数据库迁移
	if err := appRoot.Migrate(ctx); err != nil {
		cancel()
		log.WithErr(err).Panic("创建索引失败")
	}
	cancel()

	if err := appRoot.Start(); err != nil {
		log.WithErr(err).Panic("启动后台任务失败")
	}

	// 创建 Fiber 应用
	tr := configures.EnableTracer()
	fiberApp := start.GetApp(configures.Config.Server, tr, log)

	// 注册路由
	router.Register(appRoot, fiberApp)

	system.RegisterClose(func(context.Context) {
		if err := tr.Close(); err != nil {
			log.WithErr(err).Warn("关闭 tracer 失败")
		}
	})
	system.RegisterClose(appRoot.Close)
	system.RegisterClose(func(ctx context.Context) {
		if err := fiberApp.ShutdownWithContext(ctx); err != nil {
			log.WithErr(err).Error("停止 HTTP 服务失败")
		}
	})

	addr := fmt.Sprintf(":%d", configures.Config.Port)
	go func() {
		if err := fiberApp.Listen(addr); err != nil {
			log.WithErr(err).Fatal("HTTP 服务异常退出")
		}
	}()
	log.WithField("addr", addr).WithField("env", env).Info("服务启动")

	sig := system.WaitSignal(30 * time.Second)
	log.WithField("signal", sig.String()).Info("服务已停止")
}

func getBaseInfo() (string, string) {
	// 定义命令行参数
	env := flag.String("env", "dev", "环境配置 (dev, prod, test等)")
	configFile := flag.String("config", "", "配置文件路径，默认为 ./resources/{env}.yaml")

	flag.Parse()

	var filename string
	if *configFile == "" {
		getwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("获取当前文件位置失败,因为：%v", err))
		}
		filename = getwd + "/resources/" + *env + ".yaml"
	} else {
		filename = *configFile
	}
	return *env, filename
}
