package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/gunroom/internal/debugserver"
	"github.com/decker502/gunroom/pkg/app"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/embedded"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	verbose := flag.Bool("verbose", false, "显示详细日志")
	configPath := flag.String("config", "data/game.yaml", "竞技场配置（嵌入资源路径），为空使用内置布局")
	seed := flag.Uint64("seed", 0, "随机种子，0 表示随机")
	debugAddr := flag.String("debug-addr", "", "调试服务器地址（如 127.0.0.1:6060），为空不启动")
	noSave := flag.Bool("no-save", false, "不读写档案")
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		NoSave:     *noSave,
		Hooks:      metrics,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *debugAddr != "" {
		router := debugserver.NewRouter(debugserver.Config{State: gameApp, Gatherer: reg})
		go func() {
			if err := debugserver.Run(ctx, *debugAddr, router); err != nil {
				log.Printf("[DebugServer] Stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Gun Room")

	runErr := ebiten.RunGame(gameApp)
	if !gameApp.SaveOnExit() {
		fmt.Fprintln(os.Stderr, "档案保存失败")
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", runErr)
		os.Exit(1)
	}
}
