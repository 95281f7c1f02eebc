package components

import "github.com/decker502/gunroom/pkg/scenegraph"

// VisualComponent 实体在场景图中的顶层节点句柄
// Node 为 0 表示模型仍在异步加载（或加载失败），同步时跳过
type VisualComponent struct {
	Node scenegraph.NodeID
}

// Ready 视觉节点是否已就绪
func (v *VisualComponent) Ready() bool {
	return v.Node != 0
}
