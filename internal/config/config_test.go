package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = ""
level = "info"

[metrics]
enabled = false
service_name = "smc-parking-service"
path = "/metrics"

[ratelimit]
enabled = true
rps = 50.0
burst = 100

[lot]
name = "central"
assignment = "lowest_level_first"

[[lot.levels]]
number = 1
spots = [{ type = "compact" }, { type = "large" }, { id = 199, type = "handicapped" }]

[[lot.levels]]
number = 2
spots = [{ type = "compact" }]

[lot.compatibility]
wildcard_spot_types = ["handicapped"]

[lot.compatibility.matrix]
bike = ["compact"]
car = ["compact", "large"]
truck = ["large"]

[pricing]
strategy = "hourly"
hourly_rate = "10.00"
billing_unit_seconds = 3600
tax_percent = 0.0

[[pricing.discounts]]
type = "percent"
percent = 10.0
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "central", cfg.Lot.Name)
	assert.Equal(t, types.Money(1000), cfg.Pricing.HourlyRate)
	require.Len(t, cfg.Pricing.Discounts, 1)
	assert.Equal(t, "percent", cfg.Pricing.Discounts[0].Type)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestLoad_MalformedMoney(t *testing.T) {
	// Три знака после точки не разбираются в types.Money
	broken := strings.Replace(validConfig, `hourly_rate = "10.00"`, `hourly_rate = "10.005"`, 1)
	_, err := Load(writeConfig(t, broken))
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestLoad_EmptyLotRejected(t *testing.T) {
	body := `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
level = "info"

[lot]
name = "central"

[pricing]
strategy = "hourly"
hourly_rate = "10.00"
`
	_, err := Load(writeConfig(t, body))
	assert.ErrorIs(t, err, ErrInvalidLot)
}

func TestLoad_UnknownPricingStrategy(t *testing.T) {
	broken := strings.Replace(validConfig, `strategy = "hourly"`, `strategy = "surge"`, 1)
	_, err := Load(writeConfig(t, broken))
	assert.ErrorIs(t, err, ErrInvalidPricing)
}

func TestBuildLevels_AssignsIDsByStride(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	levels := cfg.Lot.BuildLevels()
	require.Len(t, levels, 2)

	require.Len(t, levels[0].Spots, 3)
	assert.Equal(t, int64(101), levels[0].Spots[0].ID)
	assert.Equal(t, int64(102), levels[0].Spots[1].ID)
	// Явный id из конфигурации сохраняется
	assert.Equal(t, int64(199), levels[0].Spots[2].ID)
	assert.Equal(t, int64(201), levels[1].Spots[0].ID)

	assert.Equal(t, domain.SpotCompact, levels[0].Spots[0].Type)
	assert.Equal(t, 1, levels[0].Spots[0].LevelNumber)
}

func TestBuildCompatRule_FromMatrix(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	rule := cfg.Lot.BuildCompatRule()
	assert.True(t, rule.Fits(domain.SpotHandicapped, "anything"))
	assert.True(t, rule.Fits(domain.SpotLarge, domain.VehicleTruck))
	assert.False(t, rule.Fits(domain.SpotCompact, domain.VehicleTruck))
}

func TestBuildCompatRule_DefaultsWhenEmpty(t *testing.T) {
	lc := LotConfig{}
	rule := lc.BuildCompatRule()
	assert.True(t, rule.Fits(domain.SpotCompact, domain.VehicleCar))
	assert.False(t, rule.Fits(domain.SpotCompact, domain.VehicleTruck))
}
