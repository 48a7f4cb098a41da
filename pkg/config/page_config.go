package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// 演示页面的默认视口尺寸
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// PageConfig 演示页面配置
// 描述宿主窗口尺寸和页面上的元素树
type PageConfig struct {
	Title      string          `yaml:"title"`      // 窗口标题
	Viewport   ViewportConfig  `yaml:"viewport"`   // 视口尺寸
	Background string          `yaml:"background"` // 背景色，如 "#101418"
	Elements   []ElementConfig `yaml:"elements"`   // 顶层元素
}

// ViewportConfig 视口尺寸（像素）
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ElementConfig 页面元素配置
// 子元素坐标相对父元素左上角
type ElementConfig struct {
	Tag      string          `yaml:"tag"`      // 标签，默认 "div"
	Classes  []string        `yaml:"classes"`  // 类名列表
	X        float64         `yaml:"x"`        // 左上角X坐标
	Y        float64         `yaml:"y"`        // 左上角Y坐标
	Width    float64         `yaml:"width"`    // 宽度
	Height   float64         `yaml:"height"`   // 高度
	Label    string          `yaml:"label"`    // 显示文字（可选）
	Message  string          `yaml:"message"`  // 点击时输出的消息，非空时元素可点击
	Fixed    bool            `yaml:"fixed"`    // 是否固定在视口
	Children []ElementConfig `yaml:"children"` // 子元素
}

// LoadPageConfig 从YAML文件加载页面配置
func LoadPageConfig(path string) (*PageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config file %s: %w", path, err)
	}
	cfg, err := ParsePageConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsePageConfig 解析页面配置并应用默认值
func ParsePageConfig(data []byte) (*PageConfig, error) {
	var cfg PageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config YAML: %w", err)
	}

	applyPageDefaults(&cfg)

	if err := validatePageConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	return &cfg, nil
}

func applyPageDefaults(cfg *PageConfig) {
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = DefaultViewportWidth
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = DefaultViewportHeight
	}
	if cfg.Title == "" {
		cfg.Title = "Target Cursor"
	}
	applyElementDefaults(cfg.Elements)
}

func applyElementDefaults(elements []ElementConfig) {
	for i := range elements {
		if elements[i].Tag == "" {
			elements[i].Tag = "div"
		}
		applyElementDefaults(elements[i].Children)
	}
}

func validatePageConfig(cfg *PageConfig) error {
	if cfg.Viewport.Width < 0 || cfg.Viewport.Height < 0 {
		return fmt.Errorf("viewport size must not be negative: %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Background != "" {
		if _, err := ParseHexColor(cfg.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return validateElements(cfg.Elements, "elements")
}

func validateElements(elements []ElementConfig, path string) error {
	for i, el := range elements {
		where := fmt.Sprintf("%s[%d]", path, i)
		if el.Width < 0 || el.Height < 0 {
			return fmt.Errorf("%s: size must not be negative", where)
		}
		for _, c := range el.Classes {
			if c == "" || strings.ContainsAny(c, " \t.") {
				return fmt.Errorf("%s: invalid class name %q", where, c)
			}
		}
		if err := validateElements(el.Children, where+".children"); err != nil {
			return err
		}
	}
	return nil
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// CountElements 返回元素树中的元素总数
func (cfg *PageConfig) CountElements() int {
	return countElements(cfg.Elements)
}

func countElements(elements []ElementConfig) int {
	n := len(elements)
	for _, el := range elements {
		n += countElements(el.Children)
	}
	return n
}
