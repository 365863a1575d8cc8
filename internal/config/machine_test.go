package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/atomviz/internal/geom"
)

func TestParseMachine(t *testing.T) {
	cfg, err := ParseMachine([]byte(`
name: example machine
zones:
  zone0: {from: [0, 0], to: [10, 10]}
  zone1: {from: [0, 12], to: [10, 20]}
traps:
  - [1, 1]
  - [3, 1]
time:
  load: 20
  store: 20
  rz: 2
  ry: 2
  cz: 1
  unit: us
movement:
  acceleration: {up: 2, down: 3}
  speed: 4
distance:
  interaction: 2.5
`))
	require.NoError(t, err)

	assert.Equal(t, "example machine", cfg.Name)
	assert.Equal(t, geom.Rect{
		From: geom.Position{X: 0, Y: 12},
		To:   geom.Position{X: 10, Y: 20},
	}, cfg.Zones["zone1"])
	assert.Equal(t, []geom.Position{{X: 1, Y: 1}, {X: 3, Y: 1}}, cfg.Traps)
	assert.Equal(t, 20.0, cfg.Time.Load)
	assert.Equal(t, "us", cfg.Time.Unit)
	assert.Equal(t, Acceleration{Up: 2, Down: 3}, cfg.Movement.Acceleration)
	assert.Equal(t, 4.0, cfg.Movement.Speed)
	assert.Equal(t, 2.5, cfg.Distance.Interaction)
}

func TestParseMachineDefaults(t *testing.T) {
	cfg, err := ParseMachine([]byte("name: sparse\n"))
	require.NoError(t, err)

	def := DefaultMachine()
	assert.Equal(t, def.Time, cfg.Time)
	assert.Equal(t, def.Movement, cfg.Movement)
	assert.Equal(t, def.Distance, cfg.Distance)
	assert.Empty(t, cfg.Zones)
}

func TestParseMachineProfiles(t *testing.T) {
	cfg, err := ParseMachine([]byte("movement: {profile: jerk}\n"))
	require.NoError(t, err)
	assert.Equal(t, ProfileJerk, cfg.Movement.Profile)

	_, err = ParseMachine([]byte("movement: {profile: warp}\n"))
	assert.ErrorContains(t, err, "unknown movement profile")
}

func TestParseMachineMalformed(t *testing.T) {
	_, err := ParseMachine([]byte("zones: ["))
	assert.ErrorContains(t, err, "parse machine config")
}
