// Package dom 在 ECS 实体集合之上提供类 DOM 的元素树访问
//
// 元素即带有 components.ElementComponent 的实体。本包负责选择器匹配、
// 视口矩形换算、祖先关系查询、命中测试以及结构变化观察。
package dom

import (
	"fmt"
	"strings"

	"github.com/decker502/targetcursor/pkg/components"
)

// compound 是一个复合选择器，如 "button.cta.primary"
type compound struct {
	tag     string // 空字符串或 "*" 表示任意标签
	classes []string
}

// Selector 是解析后的选择器列表（逗号分隔的复合选择器，任一匹配即匹配）
//
// 支持的语法：标签、通配符 *、类名（可多个），以及逗号分组。
// 不支持组合符（后代、子代、兄弟）、ID 和属性选择器。
type Selector struct {
	source string
	groups []compound
}

// ParseSelector 解析选择器字符串
func ParseSelector(s string) (Selector, error) {
	sel := Selector{source: s}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Selector{}, fmt.Errorf("selector %q: empty group", s)
		}
		c, err := parseCompound(part)
		if err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", s, err)
		}
		sel.groups = append(sel.groups, c)
	}
	return sel, nil
}

// MustParseSelector 解析选择器，失败时 panic（仅用于常量选择器）
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseCompound(part string) (compound, error) {
	var c compound
	i := 0
	// 标签部分
	for i < len(part) && part[i] != '.' {
		ch := part[i]
		if ch != '*' && !isIdentChar(ch) {
			return compound{}, fmt.Errorf("unsupported character %q in %q", ch, part)
		}
		i++
	}
	c.tag = part[:i]
	if strings.Contains(c.tag, "*") && c.tag != "*" {
		return compound{}, fmt.Errorf("invalid tag %q", c.tag)
	}

	// 类名部分
	for i < len(part) {
		i++ // 跳过 '.'
		start := i
		for i < len(part) && part[i] != '.' {
			if !isIdentChar(part[i]) {
				return compound{}, fmt.Errorf("unsupported character %q in %q", part[i], part)
			}
			i++
		}
		if i == start {
			return compound{}, fmt.Errorf("empty class name in %q", part)
		}
		c.classes = append(c.classes, part[start:i])
	}
	return c, nil
}

func isIdentChar(ch byte) bool {
	return ch == '-' || ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// String 返回原始选择器字符串
func (s Selector) String() string {
	return s.source
}

// IsZero 判断选择器是否为空（未解析）
func (s Selector) IsZero() bool {
	return len(s.groups) == 0
}

// MatchElement 判断元素是否匹配选择器
func (s Selector) MatchElement(el *components.ElementComponent) bool {
	if el == nil {
		return false
	}
	for _, g := range s.groups {
		if g.match(el) {
			return true
		}
	}
	return false
}

func (c compound) match(el *components.ElementComponent) bool {
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, el.Tag) {
		return false
	}
	for _, cls := range c.classes {
		if !el.HasClass(cls) {
			return false
		}
	}
	return true
}
