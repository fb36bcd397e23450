// internal/analysis/coordinator.go
package analysis

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/inventorypro/insights/internal/aggregate"
	"github.com/inventorypro/insights/internal/config"
	"github.com/inventorypro/insights/internal/domain"
)

const (
	defaultRetryDelay = 5 * time.Second
	defaultDebounce   = 500 * time.Millisecond
)

// Coordinator ties item mutations to the two analysis contracts. The health
// report is debounced against bursts of edits; the stock alert fires
// immediately, but only when the out-of-stock set actually changes.
type Coordinator struct {
	alerts *Runner[StockAlertResult]
	health *Runner[HealthReportResult]

	mu           sync.Mutex
	lastAlertKey string
}

func NewCoordinator(analyzer Analyzer, cfg config.AnalysisConfig) *Coordinator {
	retryDelay := time.Duration(cfg.RetryDelaySeconds) * time.Second
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	debounce := time.Duration(cfg.DebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Coordinator{
		alerts: NewRunner(analyzer.AnalyzeStockAlert, retryDelay, 0),
		health: NewRunner(analyzer.AnalyzeInventoryHealth, retryDelay, debounce),
	}
}

// ItemsChanged is called after every item mutation with the full item list
// (derived metrics already applied).
func (c *Coordinator) ItemsChanged(items []domain.Item) {
	c.health.TriggerDebounced(BuildInputs(items))

	out := aggregate.OutOfStock(items)
	key := alertKey(out)

	c.mu.Lock()
	changed := key != c.lastAlertKey
	c.lastAlertKey = key
	c.mu.Unlock()

	if changed {
		c.alerts.Trigger(BuildInputs(out))
	}
}

// RefreshHealth forces an immediate health analysis, bypassing the debounce.
func (c *Coordinator) RefreshHealth(items []domain.Item) {
	c.health.Trigger(BuildInputs(items))
}

// RefreshAlert forces a stock-alert analysis of the current out-of-stock set,
// even when the set has not changed since the last run.
func (c *Coordinator) RefreshAlert(items []domain.Item) {
	out := aggregate.OutOfStock(items)

	c.mu.Lock()
	c.lastAlertKey = alertKey(out)
	c.mu.Unlock()

	c.alerts.Trigger(BuildInputs(out))
}

func (c *Coordinator) AlertState() State[StockAlertResult] {
	return c.alerts.State()
}

func (c *Coordinator) HealthState() State[HealthReportResult] {
	return c.health.State()
}

// HealthResult returns the last resolved health report, or nil while none
// has succeeded yet. The consolidated export gates on this.
func (c *Coordinator) HealthResult() *HealthReportResult {
	state := c.health.State()
	return state.Result
}

func (c *Coordinator) Close() {
	c.alerts.Close()
	c.health.Close()
}

func alertKey(out []domain.Item) string {
	if len(out) == 0 {
		return ""
	}
	ids := make([]string, len(out))
	for i, it := range out {
		ids[i] = it.ID + ":" + strconv.Itoa(it.Quantity)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
