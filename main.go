// Package main 目标光标演示程序
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   光标配置文件（默认使用内嵌 data/cursor.yaml）
//	--page <path>     页面配置文件（默认使用内嵌 data/page.yaml）
//	--verbose         输出详细日志
//
// Controls:
//
//	P    切换 parallax
//	+/-  调整吸附距离
//	F11  切换全屏
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/targetcursor/pkg/app"
	"github.com/decker502/targetcursor/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "", "Cursor options YAML file")
	pageFlag    = flag.String("page", "", "Page layout YAML file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	demo, err := app.NewApp(app.Config{
		Verbose:          *verboseFlag,
		CursorConfigPath: *configFlag,
		PageConfigPath:   *pageFlag,
	})
	// 非 verbose 模式下日志已被丢弃，错误直接输出到 stderr
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := demo.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(demo.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(demo)
	demo.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
