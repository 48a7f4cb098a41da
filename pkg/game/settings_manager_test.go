package game

import (
	"os"
	"testing"

	"github.com/decker502/targetcursor/pkg/cursor"
	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认设置与默认光标选项一致
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	defaults := cursor.DefaultOptions()

	if settings.Customized {
		t.Error("Customized: got true, want false")
	}
	if settings.ParallaxOn != defaults.ParallaxOn {
		t.Errorf("ParallaxOn: got %v, want %v", settings.ParallaxOn, defaults.ParallaxOn)
	}
	if settings.Proximity != defaults.Proximity {
		t.Errorf("Proximity: got %v, want %v", settings.Proximity, defaults.Proximity)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Persistent() {
		t.Error("Persistent: got true, want false in degraded mode")
	}
	sm.SetProximity(50)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().Proximity != 50 {
		t.Errorf("Degraded mode Proximity: got %v, want 50", sm.GetSettings().Proximity)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_cursor_settings")

	sm1 := NewSettingsManager(gdataManager)
	if !sm1.Persistent() {
		t.Fatal("Persistent: got false, want true")
	}
	sm1.SetParallax(false)
	sm1.SetProximity(40)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if !settings.Customized {
		t.Error("Loaded Customized: got false, want true")
	}
	if settings.ParallaxOn {
		t.Error("Loaded ParallaxOn: got true, want false")
	}
	if settings.Proximity != 40 {
		t.Errorf("Loaded Proximity: got %v, want 40", settings.Proximity)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试存储数据损坏时回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestStorage(t, "test_cursor_settings_corrupted")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("proximity: [")); err != nil {
		t.Fatalf("Failed to seed corrupted data: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected defaults after corrupted load, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
}

// TestSetProximityClamp 测试 SetProximity 范围校验
func TestSetProximityClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{30, 30},
		{0, 0},
		{MaxProximity, MaxProximity},
		{-10, 0},
		{MaxProximity + 1, MaxProximity},
	}

	for _, tt := range tests {
		sm.SetProximity(tt.input)
		if sm.GetSettings().Proximity != tt.expected {
			t.Errorf("SetProximity(%v): got %v, want %v",
				tt.input, sm.GetSettings().Proximity, tt.expected)
		}
	}
}

// TestApply 测试自定义设置对光标选项的覆盖
func TestApply(t *testing.T) {
	base := cursor.DefaultOptions()
	base.Proximity = 15
	base.SpinDuration = 4

	sm := NewSettingsManager(nil)
	if got := sm.Apply(base); got != base {
		t.Errorf("Apply() without customization should be identity, got %+v", got)
	}

	sm.Adopt(base)
	if sm.GetSettings().Proximity != 15 {
		t.Errorf("Adopt() Proximity: got %v, want 15", sm.GetSettings().Proximity)
	}

	sm.SetParallax(!base.ParallaxOn)
	got := sm.Apply(base)
	if got.ParallaxOn == base.ParallaxOn {
		t.Error("Apply() should override ParallaxOn")
	}
	if got.Proximity != 15 {
		t.Errorf("Apply() Proximity: got %v, want 15", got.Proximity)
	}
	if got.SpinDuration != 4 {
		t.Errorf("Apply() should keep SpinDuration, got %v", got.SpinDuration)
	}

	// 自定义后不再跟随配置
	other := base
	other.Proximity = 90
	sm.Adopt(other)
	if sm.GetSettings().Proximity != 15 {
		t.Errorf("Adopt() after customization should be ignored, got %v", sm.GetSettings().Proximity)
	}
}
