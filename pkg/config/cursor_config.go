package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/decker502/targetcursor/pkg/cursor"
)

// CursorEnvPrefix 光标配置的环境变量前缀
// 例如 TARGETCURSOR_PROXIMITY=40 覆盖配置文件中的 proximity
const CursorEnvPrefix = "TARGETCURSOR"

// 配置键（与 cursor.Options 的 mapstructure 标签一致）
const (
	keyTargetSelector    = "targetSelector"
	keySpinDuration      = "spinDuration"
	keyHideDefaultCursor = "hideDefaultCursor"
	keyHoverDuration     = "hoverDuration"
	keyParallaxOn        = "parallaxOn"
	keyProximity         = "proximity"
)

// newCursorViper 创建带默认值和环境变量覆盖的 viper 实例
func newCursorViper() *viper.Viper {
	v := viper.New()
	defaults := cursor.DefaultOptions()
	v.SetDefault(keyTargetSelector, defaults.TargetSelector)
	v.SetDefault(keySpinDuration, defaults.SpinDuration)
	v.SetDefault(keyHideDefaultCursor, defaults.HideDefaultCursor)
	v.SetDefault(keyHoverDuration, defaults.HoverDuration)
	v.SetDefault(keyParallaxOn, defaults.ParallaxOn)
	v.SetDefault(keyProximity, defaults.Proximity)
	v.SetEnvPrefix(CursorEnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadCursorOptions 从 YAML 文件加载光标配置
//
// 文件不存在时使用默认值（不报错），环境变量始终优先于文件。
// path 为空时只应用默认值和环境变量。
func LoadCursorOptions(path string) (cursor.Options, error) {
	v := newCursorViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return cursor.Options{}, fmt.Errorf("failed to read cursor config %s: %w", path, err)
			}
			log.Printf("[Config] 加载光标配置: %s", path)
		} else if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] 光标配置 %s 不存在，使用默认值", path)
		} else {
			return cursor.Options{}, fmt.Errorf("failed to stat cursor config %s: %w", path, err)
		}
	}

	return decodeCursorOptions(v)
}

// ParseCursorOptions 从 YAML 数据解析光标配置（用于嵌入的默认配置）
func ParseCursorOptions(data []byte) (cursor.Options, error) {
	v := newCursorViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return cursor.Options{}, fmt.Errorf("failed to parse cursor config: %w", err)
	}
	return decodeCursorOptions(v)
}

func decodeCursorOptions(v *viper.Viper) (cursor.Options, error) {
	var opts cursor.Options
	if err := v.Unmarshal(&opts); err != nil {
		return cursor.Options{}, fmt.Errorf("unmarshalling cursor config: %w", err)
	}
	if err := ValidateCursorOptions(opts); err != nil {
		return cursor.Options{}, err
	}
	return opts, nil
}

// ValidateCursorOptions 检查配置取值范围
// 选择器语法由引擎在 Start 时校验
func ValidateCursorOptions(opts cursor.Options) error {
	if opts.TargetSelector == "" {
		return fmt.Errorf("targetSelector is required")
	}
	if opts.SpinDuration <= 0 {
		return fmt.Errorf("spinDuration must be positive, got %v", opts.SpinDuration)
	}
	if opts.HoverDuration < 0 {
		return fmt.Errorf("hoverDuration must not be negative, got %v", opts.HoverDuration)
	}
	if opts.Proximity < 0 {
		return fmt.Errorf("proximity must not be negative, got %v", opts.Proximity)
	}
	return nil
}
