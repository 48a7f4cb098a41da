package game

import (
	"fmt"
	"log"

	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/decker502/targetcursor/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 吸附距离调整的边界（像素）
const (
	MaxProximity  = 200.0
	ProximityStep = 10.0
)

// CursorSettings 用户在运行时调整过的光标设置
// Customized 为 false 时不覆盖配置文件中的选项
type CursorSettings struct {
	Customized bool    `yaml:"customized"` // 用户是否调整过光标选项
	ParallaxOn bool    `yaml:"parallaxOn"` // 满强度时是否保留平滑过渡
	Proximity  float64 `yaml:"proximity"`  // 吸附距离（像素）

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *CursorSettings {
	defaults := cursor.DefaultOptions()
	return &CursorSettings{
		ParallaxOn: defaults.ParallaxOn,
		Proximity:  defaults.Proximity,
	}
}

// SettingsManager 设置管理器
// 负责光标设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *CursorSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "cursor"
)

// OpenStorage 打开应用的 gdata 存储
// 失败时记录日志并返回 nil，调用方以降级模式运行
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: storage dir unavailable: %v (settings will not persist)", err)
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: failed to open storage: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded CursorSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Proximity = clampProximity(loaded.Proximity)

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *CursorSettings {
	return sm.settings
}

// Persistent 是否有可用的持久化存储
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Adopt 以当前光标选项为基准开始自定义
// 已经自定义过的设置保持不变
func (sm *SettingsManager) Adopt(opts cursor.Options) {
	if sm.settings.Customized {
		return
	}
	sm.settings.ParallaxOn = opts.ParallaxOn
	sm.settings.Proximity = clampProximity(opts.Proximity)
}

// SetParallax 设置满强度时的平滑过渡开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetParallax(on bool) {
	sm.settings.ParallaxOn = on
	sm.settings.Customized = true
}

// SetProximity 设置吸附距离，限制在 0 ~ MaxProximity
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetProximity(px float64) {
	sm.settings.Proximity = clampProximity(px)
	sm.settings.Customized = true
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// Apply 把自定义设置叠加到光标选项上
func (sm *SettingsManager) Apply(opts cursor.Options) cursor.Options {
	if !sm.settings.Customized {
		return opts
	}
	opts.ParallaxOn = sm.settings.ParallaxOn
	opts.Proximity = sm.settings.Proximity
	return opts
}

// clampProximity 将吸附距离限制在 0 ~ MaxProximity 范围内
func clampProximity(px float64) float64 {
	if px < 0 {
		return 0
	}
	if px > MaxProximity {
		return MaxProximity
	}
	return px
}
