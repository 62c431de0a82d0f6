// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Category 定义旅程阶段中的内容分类
// 顺序固定：回忆 → 理由 → 未来
type Category int

const (
	// CategoryMemories 最美好的回忆
	CategoryMemories Category = iota
	// CategoryReasons 爱你的理由
	CategoryReasons
	// CategoryFuture 想和你一起做的事
	CategoryFuture
)

// CategoryCount 分类总数
const CategoryCount = 3

// categoryOrder 分类的有序查找表，导航只通过下标前后移动
var categoryOrder = [CategoryCount]Category{
	CategoryMemories,
	CategoryReasons,
	CategoryFuture,
}

// Categories 返回按旅程顺序排列的全部分类
func Categories() []Category {
	out := make([]Category, CategoryCount)
	copy(out, categoryOrder[:])
	return out
}

// Next 返回下一个分类
// 当前已是最后一个分类时返回 false
func (c Category) Next() (Category, bool) {
	i := c.index()
	if i < 0 || i+1 >= CategoryCount {
		return c, false
	}
	return categoryOrder[i+1], true
}

// Prev 返回上一个分类
// 当前已是第一个分类时返回 false
func (c Category) Prev() (Category, bool) {
	i := c.index()
	if i <= 0 {
		return c, false
	}
	return categoryOrder[i-1], true
}

// IsValid 检查分类是否为已定义的值
func (c Category) IsValid() bool {
	return c.index() >= 0
}

func (c Category) index() int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return -1
}

// Key 返回分类在内容文件中使用的键名
func (c Category) Key() string {
	switch c {
	case CategoryMemories:
		return "memories"
	case CategoryReasons:
		return "reasons"
	case CategoryFuture:
		return "future"
	default:
		return ""
	}
}

// String 返回分类的字符串表示
func (c Category) String() string {
	switch c {
	case CategoryMemories:
		return "Memories"
	case CategoryReasons:
		return "Reasons"
	case CategoryFuture:
		return "Future"
	default:
		return "Unknown"
	}
}
