package entities

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// octahedronSoup 八面体的三角形顶点列表，每个面独立存储三个顶点（含重复）
func octahedronSoup(r float64) []mgl64.Vec3 {
	px, nx := mgl64.Vec3{r, 0, 0}, mgl64.Vec3{-r, 0, 0}
	py, ny := mgl64.Vec3{0, r, 0}, mgl64.Vec3{0, -r, 0}
	pz, nz := mgl64.Vec3{0, 0, r}, mgl64.Vec3{0, 0, -r}
	return []mgl64.Vec3{
		px, py, pz, pz, py, nx, nx, py, nz, nz, py, px,
		px, pz, ny, pz, nx, ny, nx, nz, ny, nz, px, ny,
	}
}

// DedupeVertices 合并距离不超过 tolerance 的顶点，保持首次出现的顺序
// 凸包构建要求输入顶点互不相同
func DedupeVertices(points []mgl64.Vec3, tolerance float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.Sub(q).Len() <= tolerance {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// boundsOf 顶点集合的轴对齐半尺寸
func boundsOf(points []mgl64.Vec3) mgl64.Vec3 {
	var half mgl64.Vec3
	for _, p := range points {
		for i := 0; i < 3; i++ {
			half[i] = math.Max(half[i], math.Abs(p[i]))
		}
	}
	return half
}
