package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// GameConfig holds the tunable layout and economy of the arena. Values not
// present in the YAML keep their defaults.
type GameConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Weapons   []WeaponConfig  `yaml:"weapons"`
	Crates    []CrateConfig   `yaml:"crates"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Grenades  GrenadeConfig   `yaml:"grenades"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Models    ModelPathConfig `yaml:"models"`
}

// PlayerConfig 玩家可调参数
type PlayerConfig struct {
	Speed         float64    `yaml:"speed"`
	StartPosition [3]float64 `yaml:"startPosition"`
	SpawnPosition [3]float64 `yaml:"spawnPosition"` // 掉出地图后的传送点
	StartingCoins int        `yaml:"startingCoins"`
	MagazineSize  int        `yaml:"magazineSize"`
	BulletColor   string     `yaml:"bulletColor"`
}

// WeaponConfig 一把可购买的枪
type WeaponConfig struct {
	ID           string     `yaml:"id"`   // littleGun / mediumGun / bigGun
	Size         string     `yaml:"size"` // small / medium / big
	Model        string     `yaml:"model"`
	Price        int        `yaml:"price"`
	Position     [3]float64 `yaml:"position"`
	BulletRadius float64    `yaml:"bulletRadius"`
	BulletMass   float64    `yaml:"bulletMass"`
	Silhouette   string     `yaml:"silhouette"`
}

// CrateConfig 一个抽奖宝箱
type CrateConfig struct {
	ID       string     `yaml:"id"` // crate1 / crate2 / crate5
	Price    int        `yaml:"price"`
	Position [3]float64 `yaml:"position"`
	Color    string     `yaml:"color"`
}

// ObstacleConfig 障碍物场生成参数
type ObstacleConfig struct {
	MinX            float64 `yaml:"minX"`
	MaxX            float64 `yaml:"maxX"`
	MinZ            float64 `yaml:"minZ"`
	MaxZ            float64 `yaml:"maxZ"`
	Spacing         float64 `yaml:"spacing"`
	SpawnChance     float64 `yaml:"spawnChance"` // 每个格点生成的概率
	MaxHeight       float64 `yaml:"maxHeight"`
	Size            float64 `yaml:"size"`
	OscillateChance float64 `yaml:"oscillateChance"` // 生成的障碍物中摆动的比例
}

// GrenadeConfig 手雷金字塔与重置按钮
type GrenadeConfig struct {
	Origin      [3]float64 `yaml:"origin"`
	Layers      int        `yaml:"layers"`
	Radius      float64    `yaml:"radius"`
	Mass        float64    `yaml:"mass"`
	ResetButton [3]float64 `yaml:"resetButton"`
}

// EnemyConfig 敌人出生点
type EnemyConfig struct {
	Spawn [3]float64 `yaml:"spawn"`
}

// ModelPathConfig 异步加载的模型路径
type ModelPathConfig struct {
	Enemy string `yaml:"enemy"`
	Lock  string `yaml:"lock"`
}

// DefaultGameConfig returns the built-in arena layout.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Player: PlayerConfig{
			Speed:         0.2,
			StartPosition: [3]float64{0, 2, 30},
			SpawnPosition: [3]float64{0, 5, 30},
			StartingCoins: 0,
			MagazineSize:  DefaultMagazineSize,
			BulletColor:   "#ffc000",
		},
		Weapons: []WeaponConfig{
			{ID: "bigGun", Size: "big", Model: "models/bigGun.yaml", Price: 20, Position: [3]float64{40, 1, -5}, BulletRadius: 1, BulletMass: 20, Silhouette: "grenade"},
			{ID: "mediumGun", Size: "medium", Model: "models/mediumGun.yaml", Price: 5, Position: [3]float64{40, 1, 0}, BulletRadius: 0.5, BulletMass: 10, Silhouette: "rifle"},
			{ID: "littleGun", Size: "small", Model: "models/littleGun.yaml", Price: 0, Position: [3]float64{40, 1, 5}, BulletRadius: 0.2, BulletMass: 5, Silhouette: "pistol"},
		},
		Crates: []CrateConfig{
			{ID: "crate1", Price: 1, Position: [3]float64{20, 1, -30}, Color: "#8b5a2b"},
			{ID: "crate2", Price: 2, Position: [3]float64{26, 1, -30}, Color: "#a0a0a0"},
			{ID: "crate5", Price: 5, Position: [3]float64{32, 1, -30}, Color: "#ffd700"},
		},
		Obstacles: ObstacleConfig{
			MinX: -48, MaxX: -4,
			MinZ: -48, MaxZ: 48,
			Spacing:         6,
			SpawnChance:     0.2,
			MaxHeight:       10,
			Size:            3,
			OscillateChance: 0.3,
		},
		Grenades: GrenadeConfig{
			Origin:      [3]float64{10, 0, -40},
			Layers:      4,
			Radius:      0.5,
			Mass:        1,
			ResetButton: [3]float64{10, 1, -32},
		},
		Enemy: EnemyConfig{
			Spawn: [3]float64{0, 5, 0},
		},
		Models: ModelPathConfig{
			Enemy: "models/botDrone.yaml",
			Lock:  "models/lock.yaml",
		},
	}
}

// LoadGameConfig reads and validates a YAML config from fsys.
func LoadGameConfig(fsys fs.FS, path string) (*GameConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig decodes YAML over the defaults and validates the result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the game relies on.
func (c *GameConfig) Validate() error {
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed)
	}
	if c.Player.MagazineSize <= 0 {
		return fmt.Errorf("player.magazineSize must be positive, got %d", c.Player.MagazineSize)
	}
	if c.Player.StartingCoins < 0 {
		return fmt.Errorf("player.startingCoins must not be negative, got %d", c.Player.StartingCoins)
	}

	sizes := map[string]bool{}
	for _, w := range c.Weapons {
		switch w.Size {
		case "small", "medium", "big":
		default:
			return fmt.Errorf("weapon %q: unknown size %q", w.ID, w.Size)
		}
		if sizes[w.Size] {
			return fmt.Errorf("weapon %q: duplicate size %q", w.ID, w.Size)
		}
		sizes[w.Size] = true
		if w.Price < 0 {
			return fmt.Errorf("weapon %q: negative price", w.ID)
		}
		if w.BulletRadius <= 0 || w.BulletMass <= 0 {
			return fmt.Errorf("weapon %q: bullet radius and mass must be positive", w.ID)
		}
	}

	seen := map[string]bool{}
	for _, cr := range c.Crates {
		switch cr.ID {
		case "crate1", "crate2", "crate5":
		default:
			return fmt.Errorf("unknown crate %q", cr.ID)
		}
		if seen[cr.ID] {
			return fmt.Errorf("duplicate crate %q", cr.ID)
		}
		seen[cr.ID] = true
		if cr.Price < 0 {
			return fmt.Errorf("crate %q: negative price", cr.ID)
		}
	}

	o := c.Obstacles
	if o.Spacing <= 0 {
		return fmt.Errorf("obstacles.spacing must be positive")
	}
	if o.SpawnChance < 0 || o.SpawnChance > 1 || o.OscillateChance < 0 || o.OscillateChance > 1 {
		return fmt.Errorf("obstacle chances must be within [0, 1]")
	}
	if c.Grenades.Layers < 0 {
		return fmt.Errorf("grenades.layers must not be negative")
	}
	return nil
}

// Weapon returns the weapon config with the given size.
func (c *GameConfig) Weapon(size string) (WeaponConfig, bool) {
	for _, w := range c.Weapons {
		if w.Size == size {
			return w, true
		}
	}
	return WeaponConfig{}, false
}

// PhysicsTimeStep returns the fixed simulation step in seconds.
func PhysicsTimeStep() float64 {
	return 1 / PhysicsStepsPerSecond
}
