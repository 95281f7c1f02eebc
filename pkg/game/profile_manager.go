package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Profile 持久化的玩家档案
type Profile struct {
	ID               string   `yaml:"id"`
	Coins            int      `yaml:"coins"`
	OwnedGuns        []string `yaml:"ownedGuns"`   // small / medium / big
	SelectedGun      string   `yaml:"selectedGun"` // small / medium / big
	MagazineCapacity int      `yaml:"magazineCapacity"`
	BulletColor      string   `yaml:"bulletColor"`
	EnemiesKilled    int      `yaml:"enemiesKilled"`
}

// DefaultProfile 返回新玩家档案
func DefaultProfile() *Profile {
	return &Profile{
		ID:               uuid.NewString(),
		OwnedGuns:        []string{"small"},
		SelectedGun:      "small",
		MagazineCapacity: 10,
		BulletColor:      "#ffc000",
	}
}

// Owns 是否拥有某尺寸的枪
func (p *Profile) Owns(size string) bool {
	for _, g := range p.OwnedGuns {
		if g == size {
			return true
		}
	}
	return false
}

// ProfileManager 档案管理器
// 负责档案的加载、保存和内存管理
type ProfileManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存档案）
	profile      *Profile
	restored     bool // 档案来自存储而不是新建
}

// 存储路径常量
const (
	profileObject   = "profile"
	profileProperty = "player"
)

// NewProfileManager 创建档案管理器并尝试加载已保存的档案
// 加载失败不是致命错误，使用新档案
func NewProfileManager(gdataManager *gdata.Manager) *ProfileManager {
	pm := &ProfileManager{
		gdataManager: gdataManager,
		profile:      DefaultProfile(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[ProfileManager] Warning: Failed to load profile: %v (starting fresh)", err)
	}
	return pm
}

// Load 从 gdata 加载档案
func (pm *ProfileManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	loaded := DefaultProfile()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if loaded.Coins < 0 {
		loaded.Coins = 0
	}
	if loaded.MagazineCapacity <= 0 {
		loaded.MagazineCapacity = 10
	}
	if _, err := uuid.Parse(loaded.ID); err != nil {
		loaded.ID = uuid.NewString()
	}

	pm.profile = loaded
	pm.restored = true
	log.Printf("[ProfileManager] Profile %s loaded (coins=%d)", loaded.ID, loaded.Coins)
	return nil
}

// Save 保存档案；降级模式下直接返回 nil
func (pm *ProfileManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(pm.profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(profileObject, profileProperty, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	log.Printf("[ProfileManager] Profile %s saved", pm.profile.ID)
	return nil
}

// Profile 返回当前档案
func (pm *ProfileManager) Profile() *Profile {
	return pm.profile
}

// Restored 当前档案是否从存储恢复
func (pm *ProfileManager) Restored() bool {
	return pm.restored
}

// Persistent 是否能持久化
func (pm *ProfileManager) Persistent() bool {
	return pm.gdataManager != nil
}
