package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the prometheus-backed Hooks implementation. Labels only take
// values from fixed sets (weapon, crate and entity kind names, tier index).
type Metrics struct {
	shots         *prometheus.CounterVec
	dryFires      prometheus.Counter
	reloads       prometheus.Counter
	purchases     *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	crateRolls    *prometheus.CounterVec
	cratePayout   prometheus.Counter
	assetFailures prometheus.Counter
	enemyKills    prometheus.Counter
	coins         prometheus.Gauge
	entities      *prometheus.GaugeVec
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		shots: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_shots_fired_total",
			Help: "Bullets spawned, by weapon",
		}, []string{"weapon"}),
		dryFires: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_dry_fires_total",
			Help: "Fire attempts with a full magazine",
		}),
		reloads: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_reloads_total",
			Help: "Completed reloads",
		}),
		purchases: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_purchases_total",
			Help: "Successful purchases, by item",
		}, []string{"item"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_purchase_rejections_total",
			Help: "Rejected purchase or crate attempts",
		}, []string{"item", "reason"}),
		crateRolls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_crate_rolls_total",
			Help: "Crate activations, by crate and reward tier",
		}, []string{"crate", "tier"}),
		cratePayout: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_crate_payout_coins_total",
			Help: "Coins paid out by crates",
		}),
		assetFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_asset_failures_total",
			Help: "Asset loads that failed",
		}),
		enemyKills: f.NewCounter(prometheus.CounterOpts{
			Name: "arena_enemy_kills_total",
			Help: "Enemies knocked below the kill plane",
		}),
		coins: f.NewGauge(prometheus.GaugeOpts{
			Name: "arena_coins",
			Help: "Current coin balance",
		}),
		entities: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "arena_entities_live",
			Help: "Live entities, by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ShotFired(weapon string) { m.shots.WithLabelValues(weapon).Inc() }
func (m *Metrics) DryFire()                { m.dryFires.Inc() }
func (m *Metrics) Reloaded()               { m.reloads.Inc() }
func (m *Metrics) AssetFailed()            { m.assetFailures.Inc() }
func (m *Metrics) EnemyKilled()            { m.enemyKills.Inc() }
func (m *Metrics) CoinsChanged(coins int)  { m.coins.Set(float64(coins)) }

func (m *Metrics) Purchased(item string, price int) {
	m.purchases.WithLabelValues(item).Inc()
}

func (m *Metrics) PurchaseRejected(item, reason string) {
	m.rejections.WithLabelValues(item, reason).Inc()
}

func (m *Metrics) CrateRolled(crate string, tier int, payout int) {
	m.crateRolls.WithLabelValues(crate, strconv.Itoa(tier)).Inc()
	if payout > 0 {
		m.cratePayout.Add(float64(payout))
	}
}

func (m *Metrics) EntitiesLive(kind string, n int) {
	m.entities.WithLabelValues(kind).Set(float64(n))
}
