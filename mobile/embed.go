//go:build mobile

// embed.go - 移动端默认配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把项目根目录的 data/ 复制到此目录：
//
//	cp -r data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/cursor.yaml data/page.yaml
var dataFS embed.FS
