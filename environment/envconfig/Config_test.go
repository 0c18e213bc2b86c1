package envconfig

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridnav/environment/gridworld"
	"github.com/samuelfneumann/gridnav/environment/wrappers"
)

var vars = []string{GridSizeVar, RhoVar, StochasticityVar,
	ImageObservationVar, DiscountVar, EpisodeCutoffVar, SeedVar}

// clearVars unsets all GRIDNAV_* variables for the duration of a test
func clearVars(t *testing.T) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearVars(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != Default() {
		t.Errorf("load: expected %+v, got %+v", Default(), c)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearVars(t)
	t.Setenv(GridSizeVar, "8")
	t.Setenv(RhoVar, "0.5")
	t.Setenv(ImageObservationVar, "true")
	t.Setenv(EpisodeCutoffVar, "0")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GridSize != 8 || c.Rho != 0.5 || !c.ImageObservation ||
		c.EpisodeCutoff != 0 {
		t.Errorf("load: unexpected config %+v", c)
	}
	if c.Stochasticity != gridworld.DefaultStochasticity {
		t.Errorf("load: expected default stochasticity, got %v",
			c.Stochasticity)
	}
}

func TestLoadFile(t *testing.T) {
	clearVars(t)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "GRIDNAV_GRID_SIZE=5\nGRIDNAV_STOCHASTICITY=0\n" +
		"GRIDNAV_SEED=7\nGRIDNAV_DISCOUNT=0.99\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GridSize != 5 || c.Stochasticity != 0 || c.Seed != 7 ||
		c.Discount != 0.99 {
		t.Errorf("load: unexpected config %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("load: expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	for _, v := range vars {
		clearVars(t)
		t.Setenv(v, "not-a-number")

		if _, err := Load(); err == nil {
			t.Errorf("load: expected error for malformed %v", v)
		}
	}
}

func TestCreate(t *testing.T) {
	c := Default()
	c.GridSize = 6

	e, step, err := c.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := e.(*wrappers.TimeLimit); !ok {
		t.Errorf("create: expected *wrappers.TimeLimit, got %T", e)
	}
	if !step.First() || step.Observation.Len() != 36 {
		t.Errorf("create: unexpected first step %v", step)
	}

	c.EpisodeCutoff = 0
	e, _, err = c.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := e.(*gridworld.GridWorld); !ok {
		t.Errorf("create: expected *gridworld.GridWorld, got %T", e)
	}

	c.Rho = 3
	if _, _, err := c.Create(); !errors.Is(err,
		gridworld.ErrInvalidConfiguration) {
		t.Errorf("create: expected %v, got %v",
			gridworld.ErrInvalidConfiguration, err)
	}
}

func TestJSON(t *testing.T) {
	c := Default()
	c.ImageObservation = true

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Config
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != c {
		t.Errorf("json: expected %+v, got %+v", c, decoded)
	}
}
