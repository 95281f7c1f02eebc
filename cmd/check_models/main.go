// check_models 并行解析全部模型描述文件，报告第一个错误
//
// 用法：
//
//	go run ./cmd/check_models -assets assets -config data/game.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/decker502/gunroom/pkg/assets"
	"github.com/decker502/gunroom/pkg/config"
)

func main() {
	assetsDir := flag.String("assets", "assets", "模型目录（包含 models/）")
	configPath := flag.String("config", "data/game.yaml", "竞技场配置文件")
	timeout := flag.Duration("timeout", 10*time.Second, "超时时间")
	flag.Parse()

	cfg, err := config.LoadGameConfig(os.DirFS("."), *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	paths := []string{cfg.Models.Enemy, cfg.Models.Lock}
	for _, w := range cfg.Weapons {
		paths = append(paths, w.Model)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	loader := assets.NewLoader(os.DirFS(*assetsDir), nil)
	if err := loader.Preload(ctx, paths); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Printf("✓ %s\n", p)
	}
	fmt.Printf("%d models OK\n", len(paths))
}
