//go:build !android

package utils

// EnsureStorageDir 非 Android 平台无需准备目录
// gdata 会在用户数据目录下自动创建应用目录
func EnsureStorageDir() error {
	return nil
}
